package highscore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown high score backend")

// ErrMissingPath is returned by Open when the sqlite backend has no database path
var ErrMissingPath = errors.New("sqlite backend needs a path")

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open creates the store for a backend. path is ignored by the memory backend;
// an empty path means DefaultFilePath for the file backend.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		if path == "" {
			path = DefaultFilePath()
		}
		return NewFileStore(path), nil
	case BackendSQLite:
		if path == "" {
			return nil, ErrMissingPath
		}
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Board is the game's view of a store: writes are fire-and-forget and
// failed reads show an empty leaderboard.
type Board struct {
	store   Store
	timeout time.Duration
}

// NewBoard wraps a store
func NewBoard(store Store) *Board {
	return &Board{store: store, timeout: 2 * time.Second}
}

// Record saves a finished run. Failures are logged, never returned.
func (b *Board) Record(label string, score int) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	if err := b.store.Record(ctx, label, score); err != nil {
		log.Warn().Err(err).Str("label", label).Int("score", score).Msg("failed to record high score")
	}
}

// Top returns up to n entries, or none if the store cannot be read
func (b *Board) Top(n int) []Entry {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	entries, err := b.store.TopN(ctx, n)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load high scores")
		return []Entry{}
	}
	return entries
}

// Close releases the underlying store if it holds resources
func (b *Board) Close() error {
	if c, ok := b.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
