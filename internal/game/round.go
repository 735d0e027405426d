// internal/game/round.go
//
// A Round is one or more boards sharing one guess budget and one stream of
// guesses. Single-board Wordle and multi-board variants are the same Round
// with a different number of secrets.
//
// Each accepted guess:
//   - is scored on every board that is still open,
//   - is reported as skipped for boards that already finished,
//   - consumes exactly one unit of the shared budget.

package game

import (
	"fmt"
	"unicode/utf8"
)

type Round struct {
	boards     []*Board
	maxGuesses int
	length     int
	count      int
}

// NewRound builds one board per secret, ids 0..n-1 in the given order.
func NewRound(secrets []string, maxGuesses int) (*Round, error) {
	if len(secrets) == 0 {
		return nil, ErrNoBoards
	}
	if maxGuesses <= 0 {
		return nil, ErrInvalidMaxGuesses
	}
	length := utf8.RuneCountInString(secrets[0])
	if length == 0 {
		return nil, ErrMismatchedSecretLength
	}

	boards := make([]*Board, len(secrets))
	for i, s := range secrets {
		if n := utf8.RuneCountInString(s); n != length {
			return nil, fmt.Errorf("%w: board %d has %d, want %d", ErrMismatchedSecretLength, i, n, length)
		}
		b, err := NewBoard(i, s, maxGuesses)
		if err != nil {
			return nil, err
		}
		boards[i] = b
	}
	return &Round{boards: boards, maxGuesses: maxGuesses, length: length}, nil
}

// SubmitGuess plays guess on every open board and returns one result per
// board, in board order.
func (r *Round) SubmitGuess(guess string) ([]BoardResult, error) {
	if n := utf8.RuneCountInString(guess); n != r.length {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidGuessLength, n, r.length)
	}
	if r.Status().Terminal() {
		return nil, ErrRoundAlreadyTerminal
	}
	if r.count >= r.maxGuesses {
		return nil, fmt.Errorf("%w: %d of %d used", ErrGuessBudgetExceeded, r.count, r.maxGuesses)
	}

	out := make([]BoardResult, len(r.boards))
	for i, b := range r.boards {
		if b.Status().Terminal() {
			out[i] = BoardResult{BoardID: b.ID(), Record: b.last(), Skipped: true, Status: b.Status()}
			continue
		}
		rec, err := b.Submit(guess)
		if err != nil {
			// Lengths were checked above and every board shares r.length.
			return nil, err
		}
		out[i] = BoardResult{BoardID: b.ID(), Record: rec, Status: b.Status()}
	}
	r.count++
	return out, nil
}

// Status derives the round outcome from the boards and the counter.
func (r *Round) Status() RoundStatus {
	allWon := true
	for _, b := range r.boards {
		if b.Status() != BoardWon {
			allWon = false
			break
		}
	}
	switch {
	case allWon:
		return RoundWon
	case r.count >= r.maxGuesses:
		return RoundLost
	}
	return InProgress
}

// Boards returns the boards in id order. The slice is a copy; the boards
// are live and must only be read.
func (r *Round) Boards() []*Board {
	out := make([]*Board, len(r.boards))
	copy(out, r.boards)
	return out
}

// Board returns the board with the given id.
func (r *Round) Board(id int) (*Board, bool) {
	if id < 0 || id >= len(r.boards) {
		return nil, false
	}
	return r.boards[id], true
}

func (r *Round) GuessCount() int { return r.count }
func (r *Round) MaxGuesses() int { return r.maxGuesses }
func (r *Round) WordLength() int { return r.length }
func (r *Round) Remaining() int { return r.maxGuesses - r.count }

// Won reports how many boards are solved.
func (r *Round) Won() int {
	n := 0
	for _, b := range r.boards {
		if b.Status() == BoardWon {
			n++
		}
	}
	return n
}
