package game

import "errors"

// Guess-time errors. All leave round state untouched.
var (
	ErrInvalidGuessLength   = errors.New("invalid guess length")
	ErrGuessNotInValidSet   = errors.New("not in word list")
	ErrRoundAlreadyTerminal = errors.New("round already finished")
	// ErrGuessBudgetExceeded means a caller got past the terminal-status
	// check; it should not be reachable through Round.SubmitGuess.
	ErrGuessBudgetExceeded = errors.New("guess budget exceeded")
)

// Construction errors. No partially-built Round or Session is ever returned.
var (
	ErrNoBoards               = errors.New("at least one board is required")
	ErrMismatchedSecretLength = errors.New("secrets must share one non-zero length")
	ErrInvalidMaxGuesses      = errors.New("max guesses must be positive")
	ErrInvalidWordLength      = errors.New("word length must be positive")
	ErrNoSource               = errors.New("no word source")
	ErrNotEnoughCandidates    = errors.New("not enough secret candidates")
	ErrSecretCount            = errors.New("secret count does not match board count")
)
