// internal/words/words.go
//
// Word sources for the game engine.
//
// Word Lists:
//   - "answers": words that may be drawn as a secret.
//   - "allowed": words a player may guess (always includes answers).
//
// A Lists value is built once from loaded words and is read-only afterwards,
// so one instance can back any number of sessions.
//
// Constraints:
//   • Words are trimmed and lowercased.
//   • Words with runes outside the source's alphabet are dropped.
//   • Words are grouped by rune length; the game asks for one length.

package words

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNoWordsFound is returned when a loader or source ends up empty.
	ErrNoWordsFound = errors.New("words: no words loaded")
	// ErrInvalidWord is returned by strict builders for out-of-alphabet words.
	ErrInvalidWord = errors.New("words: word outside alphabet")
)

// Alphabet is the set of runes words may use.
type Alphabet string

const (
	Letters Alphabet = "abcdefghijklmnopqrstuvwxyz"
	Numbers Alphabet = "0123456789"
)

// Contains reports whether every rune of w is in the alphabet.
func (a Alphabet) Contains(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !strings.ContainsRune(string(a), r) {
			return false
		}
	}
	return true
}

// Lists is an in-memory Source backed by answer and allowed word lists.
type Lists struct {
	alphabet Alphabet
	answers  map[int][]string    // by rune length
	allowed  map[string]struct{} // answers ∪ allowed
	nAnswers int
}

// NewLists normalizes both lists and indexes them. Out-of-alphabet words are
// dropped. Answers are always allowed as guesses.
func NewLists(answers, allowed []string, alphabet Alphabet) *Lists {
	l := &Lists{
		alphabet: alphabet,
		answers:  make(map[int][]string),
		allowed:  make(map[string]struct{}, len(answers)+len(allowed)),
	}
	seen := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		w = normalize(w)
		if !alphabet.Contains(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		n := utf8.RuneCountInString(w)
		l.answers[n] = append(l.answers[n], w)
		l.allowed[w] = struct{}{}
		l.nAnswers++
	}
	for _, w := range allowed {
		w = normalize(w)
		if alphabet.Contains(w) {
			l.allowed[w] = struct{}{}
		}
	}
	return l
}

// Build is NewLists that fails when no answers survive normalization.
func Build(answers, allowed []string, alphabet Alphabet) (*Lists, error) {
	l := NewLists(answers, allowed, alphabet)
	if l.nAnswers == 0 {
		return nil, ErrNoWordsFound
	}
	return l, nil
}

// BuildStrict is Build that rejects out-of-alphabet words instead of
// dropping them.
func BuildStrict(answers, allowed []string, alphabet Alphabet) (*Lists, error) {
	for _, list := range [][]string{answers, allowed} {
		for _, w := range list {
			if n := normalize(w); n != "" && !alphabet.Contains(n) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidWord, n)
			}
		}
	}
	return Build(answers, allowed, alphabet)
}

// SecretCandidates returns a copy of the answers of the given length.
func (l *Lists) SecretCandidates(length int) []string {
	src := l.answers[length]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsValidGuess reports whether word is an allowed guess of the given length.
func (l *Lists) IsValidGuess(word string, length int) bool {
	if utf8.RuneCountInString(word) != length {
		return false
	}
	_, ok := l.allowed[normalize(word)]
	return ok
}

// Alphabet returns the alphabet the lists were filtered with.
func (l *Lists) Alphabet() Alphabet { return l.alphabet }

// Lengths returns the word lengths that have at least one answer, ascending.
func (l *Lists) Lengths() []int {
	out := make([]int, 0, len(l.answers))
	for n := range l.answers {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return l.nAnswers, len(l.allowed)
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }
