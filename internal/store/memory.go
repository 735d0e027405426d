// internal/store/memory.go
//
// In-memory record of finished sessions and the running player stats.
// Nothing is written to disk; the tally lives as long as the process.
//
// Characteristics:
//   - Results are keyed by session ID; recording the same session twice
//     replaces the earlier result instead of counting it again.
//   - Concurrency-safe via RWMutex (the UI may read stats while a result
//     is being recorded).

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordall/internal/game"
)

// ErrNotFinished is returned when recording a session whose round is still
// in progress.
var ErrNotFinished = errors.New("session not finished")

// Result is the outcome of one finished session.
type Result struct {
	SessionID string
	Won       bool
	Guesses   int
	Boards    int
	BoardsWon int
	Elapsed   time.Duration
	Finished  time.Time
}

// Stats summarizes the recorded results in play order.
type Stats struct {
	Played    int
	Wins      int
	Streak    int
	MaxStreak int
	// Distribution counts wins by number of guesses used.
	Distribution map[int]int
}

// Store defines the results interface.
type Store interface {
	// Record adds or replaces the result for r.SessionID.
	Record(ctx context.Context, r Result) error
	// Results returns every result in the order first recorded.
	Results(ctx context.Context) ([]Result, error)
	// Stats folds the results into player stats.
	Stats(ctx context.Context) (Stats, error)
}

type memory struct {
	mu      sync.RWMutex
	order   []string
	results map[string]Result
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

func (m *memory) Record(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[r.SessionID]; !ok {
		m.order = append(m.order, r.SessionID)
	}
	m.results[r.SessionID] = r
	return nil
}

func (m *memory) Results(ctx context.Context) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.results[id])
	}
	return out, nil
}

// Stats increments games played per result; a win extends the streak,
// a loss resets it.
func (m *memory) Stats(ctx context.Context) (Stats, error) {
	results, _ := m.Results(ctx)
	st := Stats{Distribution: make(map[int]int)}
	for _, r := range results {
		st.Played++
		if r.Won {
			st.Wins++
			st.Streak++
			st.Distribution[r.Guesses]++
		} else {
			st.Streak = 0
		}
		if st.Streak > st.MaxStreak {
			st.MaxStreak = st.Streak
		}
	}
	return st, nil
}

// ResultOf builds a Result from a finished session.
func ResultOf(s *game.Session, now time.Time) (Result, error) {
	status := s.Status()
	if !status.Terminal() {
		return Result{}, ErrNotFinished
	}
	r := s.Round()
	return Result{
		SessionID: s.ID(),
		Won:       status == game.RoundWon,
		Guesses:   r.GuessCount(),
		Boards:    len(r.Boards()),
		BoardsWon: r.Won(),
		Elapsed:   now.Sub(s.Started()),
		Finished:  now,
	}, nil
}
