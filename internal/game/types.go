// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (correct/present/absent).
//   - GuessRecord: one scored guess.
//   - BoardStatus / RoundStatus: terminal-state enums.
//   - BoardResult: what a board reports back for one submission.

package game

import "strings"

// LetterStatus represents the evaluation result for a single letter in a guess.
//   - Correct: letter matches the secret at this position.
//   - Present: letter occurs among the secret's unmatched positions.
//   - Absent:  letter has no unmatched occurrence left in the secret.
type LetterStatus int

const (
	Absent LetterStatus = iota
	Present
	Correct
)

func (s LetterStatus) String() string {
	switch s {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return "?"
}

// Letter pairs a guessed rune with its status.
type Letter struct {
	Char   rune
	Status LetterStatus
}

// GuessRecord is one scored guess, in guess order.
// Treat it as immutable; Board accessors hand out copies.
type GuessRecord []Letter

// Word returns the guessed word.
func (g GuessRecord) Word() string {
	var b strings.Builder
	for _, l := range g {
		b.WriteRune(l.Char)
	}
	return b.String()
}

// Statuses returns just the per-letter statuses.
func (g GuessRecord) Statuses() []LetterStatus {
	out := make([]LetterStatus, len(g))
	for i, l := range g {
		out[i] = l.Status
	}
	return out
}

// Solved reports whether every letter is Correct.
func (g GuessRecord) Solved() bool {
	if len(g) == 0 {
		return false
	}
	for _, l := range g {
		if l.Status != Correct {
			return false
		}
	}
	return true
}

func (g GuessRecord) clone() GuessRecord {
	if g == nil {
		return nil
	}
	out := make(GuessRecord, len(g))
	copy(out, g)
	return out
}

// BoardStatus is the state of one board.
type BoardStatus int

const (
	BoardOpen BoardStatus = iota
	BoardWon
	BoardLost
)

func (s BoardStatus) String() string {
	switch s {
	case BoardOpen:
		return "open"
	case BoardWon:
		return "won"
	case BoardLost:
		return "lost"
	}
	return "?"
}

// Terminal reports whether the board accepts no more guesses.
func (s BoardStatus) Terminal() bool { return s != BoardOpen }

// RoundStatus is the aggregate state of a round.
type RoundStatus int

const (
	InProgress RoundStatus = iota
	RoundWon
	RoundLost
)

func (s RoundStatus) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	}
	return "?"
}

// Terminal reports whether the round is over.
func (s RoundStatus) Terminal() bool { return s != InProgress }

// BoardResult is one board's outcome for a single round submission.
// Skipped is set when the board was already terminal before the guess;
// Record then holds the board's final record (nil if it never had one).
type BoardResult struct {
	BoardID int
	Record  GuessRecord
	Skipped bool
	Status  BoardStatus
}
