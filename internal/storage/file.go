package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jwebster45206/mystery-engine/pkg/storage"
)

// MarkerFile is written at the root of every game directory. Reset only
// removes directories that carry it.
const MarkerFile = ".mystery"

// ErrNotGameDir is returned by Reset when the target holds files that were
// not written by a previous game.
var ErrNotGameDir = errors.New("directory is not a mystery game")

// FileStorage writes the game as a directory tree under dataDir
type FileStorage struct {
	dataDir string
	logger  *slog.Logger
}

// Ensure FileStorage implements Storage interface
var _ storage.Storage = (*FileStorage)(nil)

// NewFileStorage creates a file storage rooted at dataDir
func NewFileStorage(dataDir string, logger *slog.Logger) *FileStorage {
	if dataDir == "" {
		dataDir = "./game"
	}
	return &FileStorage{
		dataDir: dataDir,
		logger:  logger,
	}
}

// Root returns the directory the game is written to
func (f *FileStorage) Root() string {
	return f.dataDir
}

// Reset removes any previous game and recreates an empty root directory.
// A missing or empty directory is fine; anything else must carry MarkerFile.
func (f *FileStorage) Reset() error {
	entries, err := os.ReadDir(f.dataDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to inspect %s: %w", f.dataDir, err)
	case len(entries) > 0:
		if _, err := os.Stat(filepath.Join(f.dataDir, MarkerFile)); err != nil {
			f.logger.Warn("Refusing to remove directory", "dir", f.dataDir)
			return fmt.Errorf("%w: %s is not empty and has no %s file", ErrNotGameDir, f.dataDir, MarkerFile)
		}
	}

	if err := os.RemoveAll(f.dataDir); err != nil {
		return fmt.Errorf("failed to remove previous game at %s: %w", f.dataDir, err)
	}
	if err := os.MkdirAll(f.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create game directory %s: %w", f.dataDir, err)
	}
	if err := os.WriteFile(filepath.Join(f.dataDir, MarkerFile), nil, 0o644); err != nil {
		return fmt.Errorf("failed to mark game directory %s: %w", f.dataDir, err)
	}
	f.logger.Debug("Game directory reset", "dir", f.dataDir)
	return nil
}

// Ping checks that the root directory exists
func (f *FileStorage) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dataDir)
	if err != nil {
		return fmt.Errorf("game directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("game directory %s is not a directory", f.dataDir)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if path == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid artifact path %q", path)
	}
	return filepath.Join(f.dataDir, clean), nil
}

func (f *FileStorage) WriteText(ctx context.Context, path string, content string) error {
	full, err := f.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (f *FileStorage) ReadText(ctx context.Context, path string) (string, error) {
	full, err := f.resolve(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", storage.ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func (f *FileStorage) List(ctx context.Context) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(f.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.dataDir, path)
		if err != nil {
			return err
		}
		if rel == MarkerFile {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		f.logger.Error("Failed to walk game directory", "error", err)
		return nil, fmt.Errorf("failed to list game files: %w", err)
	}
	slices.Sort(paths)
	return paths, nil
}
