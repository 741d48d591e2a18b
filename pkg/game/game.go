// Package game runs one generation of a mystery and hands the result to a
// storage backend as text files.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/mystery"
	"github.com/jwebster45206/mystery-engine/pkg/random"
	"github.com/jwebster45206/mystery-engine/pkg/setting"
	"github.com/jwebster45206/mystery-engine/pkg/storage"
	"github.com/jwebster45206/mystery-engine/pkg/trail"
)

// File names used inside every location directory.
const (
	NotebookFile = "notebook.md"
	ClueFile     = "clue.txt"
	PersonsFile  = "persons.txt"
	ObjectsFile  = "objects.txt"
)

// Options controls one generation run.
type Options struct {
	Suspects int
	Weapons  int
	// Seed makes the run reproducible. Zero picks a seed from the clock.
	Seed uint64
}

// Generator builds games in a fixed setting.
type Generator struct {
	setting *setting.Setting
	logger  *slog.Logger
}

// NewGenerator returns a Generator for s.
func NewGenerator(s *setting.Setting, logger *slog.Logger) *Generator {
	return &Generator{setting: s, logger: logger}
}

// Game is the complete, read-only result of a run.
type Game struct {
	ID       uuid.UUID
	Seed     uint64
	Setting  string
	Mystery  *mystery.Mystery
	Contents *mystery.Contents
	Trail    *trail.Trail
	Notebook string
}

// Generate runs selection, distribution and the trail builder against one
// random source seeded from opts.Seed.
func (g *Generator) Generate(opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}
	src := random.New(seed)

	s := g.setting
	locations := s.Hierarchy.Paths()

	m, err := mystery.Select(src, s.Pool, locations, opts.Suspects, opts.Weapons)
	if err != nil {
		return nil, fmt.Errorf("failed to select mystery: %w", err)
	}
	decoys := mystery.DecoysFor(src, s.Pool, m)
	contents := mystery.Distribute(src, locations, m, decoys)

	builder, err := trail.NewBuilder(src, s.Templates)
	if err != nil {
		return nil, fmt.Errorf("failed to create trail builder: %w", err)
	}
	t := builder.Build(s.Pool.People, m, contents)

	game := &Game{
		ID:       uuid.New(),
		Seed:     seed,
		Setting:  s.Name,
		Mystery:  m,
		Contents: contents,
		Trail:    t,
		Notebook: m.Notebook(),
	}

	g.logger.Debug("Mystery generated",
		"game_id", game.ID,
		"seed", seed,
		"suspects", len(m.Suspects),
		"weapons", len(m.Weapons),
		"extra_people", m.ExtraPeople,
		"extra_objects", m.ExtraObjects,
		"trail_length", len(t.Sequence))

	return game, nil
}

// Solution is the answer triple.
func (g *Game) Solution() mystery.Answer {
	return g.Mystery.Answer
}

// Artifact is one text file of the generated game.
type Artifact struct {
	Path    string
	Content string
}

// Artifacts lists every file of the game in a stable order: the notebook, the
// root clue, then for each location its persons, objects and clue.
func (g *Game) Artifacts() []Artifact {
	artifacts := []Artifact{{Path: NotebookFile, Content: g.Notebook}}
	if g.Trail.Intro != "" {
		artifacts = append(artifacts, Artifact{Path: ClueFile, Content: g.Trail.Intro})
	}

	for _, p := range g.Contents.Paths() {
		room := g.Contents.Room(p)
		artifacts = append(artifacts,
			Artifact{Path: filePath(p, PersonsFile), Content: room.PeopleText()},
			Artifact{Path: filePath(p, ObjectsFile), Content: room.ObjectsText()},
		)
		if clue, ok := g.Trail.ClueAt(p); ok {
			artifacts = append(artifacts, Artifact{Path: filePath(p, ClueFile), Content: clue})
		}
	}
	return artifacts
}

func filePath(p location.Path, name string) string {
	return path.Join(p.String(), name)
}

// WriteError records an artifact that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write sends every artifact to store. A failed write is logged and skipped so
// that unrelated locations still get their files; all failures are returned
// joined. The count of written artifacts is returned either way.
func (g *Game) Write(ctx context.Context, store storage.Storage, logger *slog.Logger) (int, error) {
	var (
		errs    []error
		written int
	)
	for _, a := range g.Artifacts() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := store.WriteText(ctx, a.Path, a.Content); err != nil {
			logger.Error("Failed to write artifact", "game_id", g.ID, "path", a.Path, "error", err)
			errs = append(errs, &WriteError{Path: a.Path, Err: err})
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}
