// internal/game/evaluate.go
//
// Guess scoring. Pure functions, no state.
//
// The two-pass order matters for repeated letters:
//   Pass 1: exact matches become Correct and consume their secret letter.
//   Pass 2: remaining guess letters become Present while unconsumed copies
//           of that letter are left in the secret, otherwise Absent.

package game

import "fmt"

// Evaluate scores guess against secret, one status per rune.
// Both words must have the same rune length; callers reject mismatches
// before getting here, so a mismatch panics.
func Evaluate(secret, guess string) []LetterStatus {
	s, g := []rune(secret), []rune(guess)
	if len(s) != len(g) {
		panic(fmt.Sprintf("game: evaluate %q against %q: length mismatch", guess, secret))
	}

	res := make([]LetterStatus, len(g))
	pool := make(map[rune]int, len(s))
	for _, r := range s {
		pool[r]++
	}

	// First pass: hits.
	for i := range g {
		if g[i] == s[i] {
			res[i] = Correct
			pool[g[i]]--
		}
	}

	// Second pass: presents and misses for everything that isn't a hit.
	for i := range g {
		if res[i] == Correct {
			continue
		}
		if pool[g[i]] > 0 {
			res[i] = Present
			pool[g[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// Score evaluates guess and pairs each rune with its status.
func Score(secret, guess string) GuessRecord {
	statuses := Evaluate(secret, guess)
	rec := make(GuessRecord, 0, len(statuses))
	for i, r := range []rune(guess) {
		rec = append(rec, Letter{Char: r, Status: statuses[i]})
	}
	return rec
}
