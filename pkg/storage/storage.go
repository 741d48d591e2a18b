package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by ReadText when nothing was written at a path.
var ErrNotFound = errors.New("artifact not found")

// Storage receives the generated game as text files addressed by slash-joined
// paths relative to the game root, e.g. "park/pond/clue.txt".
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// WriteText stores content at path, replacing anything already there and
	// creating whatever parent locations the backend needs.
	WriteText(ctx context.Context, path string, content string) error
	// ReadText returns what was written at path, or ErrNotFound.
	ReadText(ctx context.Context, path string) (string, error)
	// List returns every written path in ascending order.
	List(ctx context.Context) ([]string, error)
}
