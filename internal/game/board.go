package game

import (
	"fmt"
	"unicode/utf8"
)

// Board is one secret plus the guesses scored against it.
type Board struct {
	id         int
	secret     string
	length     int
	maxGuesses int
	history    []GuessRecord
	status     BoardStatus
}

// NewBoard creates an open board. maxGuesses is the budget of the round the
// board belongs to; it is what turns an unsolved board into a lost one.
func NewBoard(id int, secret string, maxGuesses int) (*Board, error) {
	n := utf8.RuneCountInString(secret)
	if n == 0 {
		return nil, ErrMismatchedSecretLength
	}
	if maxGuesses <= 0 {
		return nil, ErrInvalidMaxGuesses
	}
	return &Board{id: id, secret: secret, length: n, maxGuesses: maxGuesses}, nil
}

// Submit scores guess, appends it to the history and updates the status.
// A board that is already won or lost ignores the guess and returns its
// final record again.
func (b *Board) Submit(guess string) (GuessRecord, error) {
	if b.status.Terminal() {
		return b.last(), nil
	}
	if n := utf8.RuneCountInString(guess); n != b.length {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidGuessLength, n, b.length)
	}

	rec := Score(b.secret, guess)
	b.history = append(b.history, rec)
	switch {
	case rec.Solved():
		b.status = BoardWon
	case len(b.history) >= b.maxGuesses:
		b.status = BoardLost
	}
	return rec.clone(), nil
}

func (b *Board) ID() int { return b.id }
func (b *Board) Secret() string { return b.secret }
func (b *Board) WordLength() int { return b.length }
func (b *Board) Status() BoardStatus { return b.status }
func (b *Board) Guesses() int { return len(b.history) }

// History returns a copy of the scored guesses in submission order.
func (b *Board) History() []GuessRecord {
	out := make([]GuessRecord, len(b.history))
	for i, rec := range b.history {
		out[i] = rec.clone()
	}
	return out
}

// Alphabet folds the history into per-letter keyboard hints.
func (b *Board) Alphabet() Alphabet {
	a := Alphabet{}
	for _, rec := range b.history {
		a.apply(rec)
	}
	return a
}

func (b *Board) last() GuessRecord {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1].clone()
}
