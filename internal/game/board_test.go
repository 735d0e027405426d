package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsBadInput(t *testing.T) {
	_, err := NewBoard(0, "", 6)
	assert.ErrorIs(t, err, ErrMismatchedSecretLength)
	_, err = NewBoard(0, "apple", 0)
	assert.ErrorIs(t, err, ErrInvalidMaxGuesses)
}

func TestBoardWin(t *testing.T) {
	b, err := NewBoard(0, "apple", 6)
	require.NoError(t, err)
	assert.Equal(t, BoardOpen, b.Status())
	assert.Equal(t, 5, b.WordLength())

	_, err = b.Submit("grape")
	require.NoError(t, err)
	assert.Equal(t, BoardOpen, b.Status())

	rec, err := b.Submit("apple")
	require.NoError(t, err)
	assert.True(t, rec.Solved())
	assert.Equal(t, BoardWon, b.Status())
	assert.Equal(t, 2, b.Guesses())
}

func TestBoardLosesAtBudget(t *testing.T) {
	b, err := NewBoard(0, "apple", 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := b.Submit("bread")
		require.NoError(t, err)
	}
	assert.Equal(t, BoardLost, b.Status())
}

func TestBoardWinOnLastGuessIsWin(t *testing.T) {
	b, _ := NewBoard(0, "apple", 2)
	_, _ = b.Submit("bread")
	_, _ = b.Submit("apple")
	assert.Equal(t, BoardWon, b.Status())
}

func TestBoardTerminalIsIdempotent(t *testing.T) {
	for _, tc := range []struct {
		name  string
		plays []string
		want  BoardStatus
	}{
		{"won", []string{"apple"}, BoardWon},
		{"lost", []string{"bread", "crane"}, BoardLost},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := NewBoard(0, "apple", 2)
			for _, g := range tc.plays {
				_, err := b.Submit(g)
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, b.Status())
			before := b.History()

			rec, err := b.Submit("stone")
			require.NoError(t, err)
			assert.Equal(t, before[len(before)-1], rec, "returns prior final record")
			// Even a malformed guess is ignored once terminal.
			_, err = b.Submit("x")
			require.NoError(t, err)

			assert.Equal(t, before, b.History())
			assert.Equal(t, tc.want, b.Status())
		})
	}
}

func TestBoardRejectsWrongLength(t *testing.T) {
	b, _ := NewBoard(0, "apple", 6)
	_, err := b.Submit("app")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidGuessLength))
	assert.Empty(t, b.History())
}

func TestBoardHistoryIsACopy(t *testing.T) {
	b, _ := NewBoard(0, "apple", 6)
	rec, _ := b.Submit("grape")
	rec[0].Status = Correct

	h := b.History()
	h[0][1].Status = Correct
	assert.Equal(t, []LetterStatus{A, A, P, P, C}, b.History()[0].Statuses())
}

func TestBoardAlphabet(t *testing.T) {
	b, _ := NewBoard(0, "apple", 6)

	_, _ = b.Submit("pxxxx")
	a := b.Alphabet()
	assert.Equal(t, FoundElsewhere, a.Get('p'))
	assert.Equal(t, Unused, a.Get('x'))
	assert.Equal(t, NotGuessed, a.Get('z'))

	_, _ = b.Submit("xpxxx")
	assert.Equal(t, Found, b.Alphabet().Get('p'))

	// Present after Found does not demote.
	_, _ = b.Submit("pxxxx")
	assert.Equal(t, Found, b.Alphabet().Get('p'))
}

func TestAlphabetAbsentThenCorrectInOneGuess(t *testing.T) {
	b, _ := NewBoard(0, "xxxxe", 6)
	_, _ = b.Submit("exxxe")
	assert.Equal(t, Found, b.Alphabet().Get('e'))
}

func TestAlphabetRepeatedLetterKeepsElsewhere(t *testing.T) {
	// First 'a' is present, second has nothing left to match.
	b, _ := NewBoard(0, "xxaxx", 6)
	_, _ = b.Submit("aaxyz")
	assert.Equal(t, FoundElsewhere, b.Alphabet().Get('a'))
}
