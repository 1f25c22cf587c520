// apps/go-server/internal/store/store.go
//
// Game storage: keeps in-flight games between requests.
//
// Only the (word, guessed letters) pair of each game is kept; nothing about
// finished games outlives the next "new game" or the idle sweep.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/endgame/apps/go-server/internal/game"
)

// ErrNotFound is returned by Get for unknown or expired IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
// Implementations are backed by memory, SQLite or Redis.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a copy of a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete removes a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep removes games not updated since cutoff and reports how many went.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}

// Janitor calls Sweep every interval with a cutoff of now-ttl until ctx is done.
// A non-positive interval disables sweeping.
func Janitor(ctx context.Context, s Store, interval, ttl time.Duration, onSweep func(n int, err error)) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := s.Sweep(ctx, now.Add(-ttl))
			if onSweep != nil {
				onSweep(n, err)
			}
		}
	}
}
