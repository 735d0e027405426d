package game

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	A = Absent
	P = Present
	C = Correct
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		guess  string
		want   []LetterStatus
	}{
		{"no duplicates", "CRANE", "TRACE", []LetterStatus{A, C, C, P, C}},
		{"all correct", "APPLE", "APPLE", []LetterStatus{C, C, C, C, C}},
		{"all absent", "APPLE", "STORM", []LetterStatus{A, A, A, A, A}},
		{"guess has more copies than secret", "ROBOT", "ROOOO", []LetterStatus{C, C, A, C, A}},
		{"duplicates only present", "SPEED", "ERASE", []LetterStatus{P, A, A, P, P}},
		{"hit consumes before present", "ABBEY", "KEBAB", []LetterStatus{A, P, C, P, P}},
		{"late hit beats early present", "XXXXE", "EXXXE", []LetterStatus{A, C, C, C, C}},
		{"grape against apple", "APPLE", "GRAPE", []LetterStatus{A, A, P, P, C}},
		{"digits", "01234", "43210", []LetterStatus{P, P, C, P, P}},
		{"single letter", "a", "a", []LetterStatus{C}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.secret, tc.guess)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Evaluate(%q, %q) mismatch (-want +got):\n%s", tc.secret, tc.guess, diff)
			}
		})
	}
}

func TestEvaluateLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Evaluate("APPLE", "APP") })
}

// Every secret/guess pair over a small alphabet: exact matches are always
// Correct, and no letter is marked non-Absent more often than the secret
// holds it (and exactly min(guess count, secret count) times).
func TestEvaluateExhaustiveSmallAlphabet(t *testing.T) {
	words := allWords("abc", 3)
	for _, secret := range words {
		for _, guess := range words {
			got := Evaluate(secret, guess)
			require.Len(t, got, 3)

			marked := map[byte]int{}
			for i := range guess {
				if guess[i] == secret[i] {
					require.Equal(t, Correct, got[i], "secret=%s guess=%s pos=%d", secret, guess, i)
				}
				if got[i] == Correct {
					require.Equal(t, secret[i], guess[i])
				}
				if got[i] != Absent {
					marked[guess[i]]++
				}
			}
			for c, n := range marked {
				inSecret := strings.Count(secret, string(c))
				inGuess := strings.Count(guess, string(c))
				require.LessOrEqual(t, n, inSecret, "secret=%s guess=%s letter=%c", secret, guess, c)
				require.Equal(t, min(inSecret, inGuess), n, "secret=%s guess=%s letter=%c", secret, guess, c)
			}
		}
	}
}

func TestScorePairsRunes(t *testing.T) {
	rec := Score("crane", "trace")
	want := GuessRecord{
		{'t', Absent}, {'r', Correct}, {'a', Correct}, {'c', Present}, {'e', Correct},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("Score mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "trace", rec.Word())
	assert.False(t, rec.Solved())
	assert.True(t, Score("crane", "crane").Solved())
	assert.Equal(t, []LetterStatus{A, C, C, P, C}, rec.Statuses())
}

func allWords(alphabet string, n int) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, prefix := range allWords(alphabet, n-1) {
		for _, r := range alphabet {
			out = append(out, prefix+string(r))
		}
	}
	return out
}
