// internal/store/memory.go
//
// In-memory registry of the games played during one run.
// Used by the controller to keep finished games and by the renderer to show
// a session summary (played, wins, streaks, guess distribution).
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID, remembering insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordlet/internal/game"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the registry interface for game sessions.
type Store interface {
	// Save adds a game or refreshes an existing entry.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// List returns games in the order they were first saved.
	List(ctx context.Context) ([]*game.Game, error)

	// Summary aggregates the finished games.
	Summary(ctx context.Context) (Summary, error)
}

// Summary holds per-run statistics. Games still in progress are ignored.
type Summary struct {
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	// Distribution[i] counts games won with i+1 guesses.
	Distribution [game.MaxGuesses]int
}

// WinRate returns wins as a percentage of games played.
func (s Summary) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and order
	games map[string]*game.Game // keyed by Game.ID()
	order []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID()]; !ok {
		m.order = append(m.order, g.ID())
	}
	m.games[g.ID()] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Game, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.games[id])
	}
	return out, nil
}

// Summary walks finished games in play order; a loss resets the streak.
func (m *memory) Summary(ctx context.Context) (Summary, error) {
	games, err := m.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	for _, g := range games {
		switch g.Status() {
		case game.Won:
			s.Played++
			s.Wins++
			s.CurrentStreak++
			if s.CurrentStreak > s.MaxStreak {
				s.MaxStreak = s.CurrentStreak
			}
			if n := len(g.Guesses()); n >= 1 && n <= game.MaxGuesses {
				s.Distribution[n-1]++
			}
		case game.Lost:
			s.Played++
			s.CurrentStreak = 0
		}
	}
	return s, nil
}
