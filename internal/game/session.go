// internal/game/session.go
//
// Session is the top-level owner of one Round and the entry point the front
// end talks to.
// Responsibilities:
//   - Pick secrets from the word source through the injected Picker.
//   - Normalize and validate guesses (length, word list) before they reach
//     the round, so rejected guesses never consume the budget.
//   - Log the session lifecycle.
//
// A Session is not safe for concurrent use; callers serialize access.

package game

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Source supplies secrets and decides which guesses are words.
// It is read-only from the engine's point of view. Candidates may come in
// any case; they are lowercased before play. IsValidGuess always receives
// a trimmed, lowercased word.
type Source interface {
	SecretCandidates(length int) []string
	IsValidGuess(word string, length int) bool
}

// SecretDrawer is implemented by sources that can draw count distinct
// secrets without listing every candidate. Session prefers it over
// SecretCandidates when the source offers it.
type SecretDrawer interface {
	DrawSecrets(length, count int, p Picker) ([]string, error)
}

// Options configure a new Session.
type Options struct {
	WordLength int
	BoardCount int
	MaxGuesses int
	Source     Source

	// Picker selects secrets. Nil means a crypto/rand backed picker.
	Picker Picker
	// Secrets pins the secrets directly, bypassing the Picker. Must hold
	// BoardCount words of WordLength.
	Secrets []string
	// Logger receives lifecycle events. Nil disables logging.
	Logger *zerolog.Logger
}

// Turn is what the front end gets back for one accepted guess.
type Turn struct {
	Word       string
	Results    []BoardResult
	Status     RoundStatus
	GuessCount int
}

type Session struct {
	id      string
	opts    Options
	round   *Round
	started time.Time
	log     zerolog.Logger
}

// NewSession validates opts, draws the secrets and builds the round.
func NewSession(opts Options) (*Session, error) {
	if opts.WordLength <= 0 {
		return nil, ErrInvalidWordLength
	}
	if opts.BoardCount <= 0 {
		return nil, ErrNoBoards
	}
	if opts.MaxGuesses <= 0 {
		return nil, ErrInvalidMaxGuesses
	}
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	if opts.Picker == nil {
		opts.Picker = NewCryptoPicker()
	}

	secrets, err := drawSecrets(opts)
	if err != nil {
		return nil, err
	}
	round, err := NewRound(secrets, opts.MaxGuesses)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:      uuid.NewString(),
		opts:    opts,
		round:   round,
		started: time.Now(),
		log:     zerolog.Nop(),
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("session", s.id).Logger()
	}
	s.log.Debug().
		Int("boards", opts.BoardCount).
		Int("length", opts.WordLength).
		Int("maxGuesses", opts.MaxGuesses).
		Msg("session started")
	return s, nil
}

func drawSecrets(opts Options) ([]string, error) {
	if opts.Secrets != nil {
		if len(opts.Secrets) != opts.BoardCount {
			return nil, fmt.Errorf("%w: %d secrets for %d boards", ErrSecretCount, len(opts.Secrets), opts.BoardCount)
		}
		return normalizeSecrets(opts.Secrets, opts.WordLength)
	}

	if d, ok := opts.Source.(SecretDrawer); ok {
		secrets, err := d.DrawSecrets(opts.WordLength, opts.BoardCount, opts.Picker)
		if err != nil {
			return nil, fmt.Errorf("%w: length %d for %d boards", err, opts.WordLength, opts.BoardCount)
		}
		return normalizeSecrets(secrets, opts.WordLength)
	}

	listed := opts.Source.SecretCandidates(opts.WordLength)
	candidates := make([]string, len(listed))
	for i, w := range listed {
		candidates[i] = normalize(w)
	}
	secrets, err := pickSecrets(candidates, opts.BoardCount, opts.Picker)
	if err != nil {
		return nil, fmt.Errorf("%w: %d words of length %d for %d boards",
			err, len(candidates), opts.WordLength, opts.BoardCount)
	}
	return normalizeSecrets(secrets, opts.WordLength)
}

// normalizeSecrets lowercases secrets and checks their length.
func normalizeSecrets(secrets []string, length int) ([]string, error) {
	out := make([]string, len(secrets))
	for i, w := range secrets {
		w = normalize(w)
		if utf8.RuneCountInString(w) != length {
			return nil, fmt.Errorf("%w: %q", ErrMismatchedSecretLength, w)
		}
		out[i] = w
	}
	return out, nil
}

// Guess validates word and plays it on the round.
func (s *Session) Guess(word string) (Turn, error) {
	word = normalize(word)
	if s.round.Status().Terminal() {
		return Turn{}, ErrRoundAlreadyTerminal
	}
	if n := utf8.RuneCountInString(word); n != s.opts.WordLength {
		s.log.Debug().Str("guess", word).Msg("rejected: length")
		return Turn{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidGuessLength, n, s.opts.WordLength)
	}
	if !s.opts.Source.IsValidGuess(word, s.opts.WordLength) {
		s.log.Debug().Str("guess", word).Msg("rejected: not a word")
		return Turn{}, fmt.Errorf("%w: %q", ErrGuessNotInValidSet, word)
	}

	results, err := s.round.SubmitGuess(word)
	if err != nil {
		return Turn{}, err
	}
	t := Turn{
		Word:       word,
		Results:    results,
		Status:     s.round.Status(),
		GuessCount: s.round.GuessCount(),
	}
	s.log.Debug().Str("guess", word).Int("count", t.GuessCount).Msg("guess accepted")
	if t.Status.Terminal() {
		s.log.Info().
			Str("status", t.Status.String()).
			Int("guesses", t.GuessCount).
			Int("boardsWon", s.round.Won()).
			Dur("elapsed", time.Since(s.started)).
			Msg("round finished")
	}
	return t, nil
}

// IsValidGuess reports whether word would be accepted as a guess.
func (s *Session) IsValidGuess(word string) bool {
	word = normalize(word)
	return utf8.RuneCountInString(word) == s.opts.WordLength &&
		s.opts.Source.IsValidGuess(word, s.opts.WordLength)
}

func (s *Session) ID() string { return s.id }
func (s *Session) Round() *Round { return s.round }
func (s *Session) Status() RoundStatus { return s.round.Status() }
func (s *Session) Started() time.Time { return s.started }
func (s *Session) Options() Options { return s.opts }

// Restart returns a fresh session with the same options. Pinned secrets are
// dropped so the new round draws its own.
func (s *Session) Restart() (*Session, error) {
	opts := s.opts
	opts.Secrets = nil
	return NewSession(opts)
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }
