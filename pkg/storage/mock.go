package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MockStorage is an in-memory Storage for testing
type MockStorage struct {
	mu          sync.RWMutex
	files       map[string]string
	writeErrors map[string]error
	pingError   error
	closed      bool
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		files:       make(map[string]string),
		writeErrors: make(map[string]error),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetWriteError makes every write to path fail with err. A nil err clears it.
func (m *MockStorage) SetWriteError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.writeErrors, path)
		return
	}
	m.writeErrors[path] = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close marks the mock closed; later writes fail.
func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// WriteText stores content in memory
func (m *MockStorage) WriteText(ctx context.Context, path string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("mock storage is closed")
	}
	if err := m.writeErrors[path]; err != nil {
		return err
	}
	m.files[path] = content
	return nil
}

// ReadText returns stored content
func (m *MockStorage) ReadText(ctx context.Context, path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, exists := m.files[path]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return content, nil
}

// List returns all stored paths, sorted
func (m *MockStorage) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths, nil
}
