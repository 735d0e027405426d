package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundValidation(t *testing.T) {
	cases := []struct {
		name    string
		secrets []string
		max     int
		want    error
	}{
		{"no boards", nil, 6, ErrNoBoards},
		{"empty slice", []string{}, 6, ErrNoBoards},
		{"zero budget", []string{"apple"}, 0, ErrInvalidMaxGuesses},
		{"negative budget", []string{"apple"}, -1, ErrInvalidMaxGuesses},
		{"mismatched lengths", []string{"apple", "pear"}, 6, ErrMismatchedSecretLength},
		{"empty secret", []string{""}, 6, ErrMismatchedSecretLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRound(tc.secrets, tc.max)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, r)
		})
	}
}

func TestRoundBoardsKeepOrder(t *testing.T) {
	r, err := NewRound([]string{"apple", "bread", "crane"}, 6)
	require.NoError(t, err)
	for i, b := range r.Boards() {
		assert.Equal(t, i, b.ID())
	}
	b, ok := r.Board(1)
	require.True(t, ok)
	assert.Equal(t, "bread", b.Secret())
	_, ok = r.Board(3)
	assert.False(t, ok)
	assert.Equal(t, 5, r.WordLength())
	assert.Equal(t, InProgress, r.Status())
}

func TestRoundBudgetAccounting(t *testing.T) {
	const k = 4
	r, _ := NewRound([]string{"apple"}, k)
	for i := 1; i <= k; i++ {
		_, err := r.SubmitGuess("bread")
		require.NoError(t, err)
		assert.Equal(t, i, r.GuessCount())
		assert.Equal(t, k-i, r.Remaining())
	}
	assert.Equal(t, RoundLost, r.Status())

	_, err := r.SubmitGuess("bread")
	assert.ErrorIs(t, err, ErrRoundAlreadyTerminal)
	assert.Equal(t, k, r.GuessCount())
}

func TestRoundRejectsWrongLengthWithoutConsumingBudget(t *testing.T) {
	r, _ := NewRound([]string{"apple"}, 6)
	_, err := r.SubmitGuess("apples")
	assert.ErrorIs(t, err, ErrInvalidGuessLength)
	assert.Equal(t, 0, r.GuessCount())
	assert.Empty(t, r.Boards()[0].History())
}

func TestRoundMultiBoardSynchrony(t *testing.T) {
	r, _ := NewRound([]string{"apple", "bread", "crane"}, 5)

	res, err := r.SubmitGuess("apple")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, 1, r.GuessCount(), "one submission counts once regardless of boards")
	assert.Equal(t, BoardWon, res[0].Status)
	assert.False(t, res[0].Skipped)
	assert.Equal(t, BoardOpen, res[1].Status)
	assert.Equal(t, BoardOpen, res[2].Status)
	appleRecord := res[0].Record

	res, err = r.SubmitGuess("bread")
	require.NoError(t, err)
	assert.Equal(t, 2, r.GuessCount())
	assert.True(t, res[0].Skipped)
	assert.Equal(t, appleRecord, res[0].Record)
	assert.Equal(t, BoardWon, res[1].Status)
	assert.False(t, res[2].Skipped)
	assert.Equal(t, 1, r.Boards()[0].Guesses(), "won board is not scored again")
	assert.Equal(t, 2, r.Boards()[2].Guesses())
	assert.Equal(t, InProgress, r.Status())

	_, err = r.SubmitGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, RoundWon, r.Status())
	assert.Equal(t, 3, r.Won())

	_, err = r.SubmitGuess("crane")
	assert.ErrorIs(t, err, ErrRoundAlreadyTerminal)
}

func TestRoundPartialOutcome(t *testing.T) {
	r, _ := NewRound([]string{"apple", "bread"}, 2)
	_, _ = r.SubmitGuess("apple")
	_, _ = r.SubmitGuess("crane")

	assert.Equal(t, RoundLost, r.Status())
	assert.Equal(t, BoardWon, r.Boards()[0].Status())
	assert.Equal(t, BoardLost, r.Boards()[1].Status())
	assert.Equal(t, 1, r.Won())
}

func TestRoundWinOnFinalGuess(t *testing.T) {
	r, _ := NewRound([]string{"apple", "bread"}, 2)
	_, _ = r.SubmitGuess("apple")
	_, _ = r.SubmitGuess("bread")
	assert.Equal(t, RoundWon, r.Status())
}

func TestRoundEndToEnd(t *testing.T) {
	r, err := NewRound([]string{"APPLE"}, 6)
	require.NoError(t, err)

	res, err := r.SubmitGuess("GRAPE")
	require.NoError(t, err)
	assert.Equal(t, []LetterStatus{A, A, P, P, C}, res[0].Record.Statuses())
	assert.Equal(t, InProgress, r.Status())

	res, err = r.SubmitGuess("APPLE")
	require.NoError(t, err)
	assert.Equal(t, []LetterStatus{C, C, C, C, C}, res[0].Record.Statuses())
	assert.Equal(t, BoardWon, r.Boards()[0].Status())
	assert.Equal(t, RoundWon, r.Status())
	assert.Equal(t, 2, r.GuessCount())
}
