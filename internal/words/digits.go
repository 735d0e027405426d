package words

import (
	"fmt"
	"unicode/utf8"

	"github.com/robalobadob/wordall/internal/game"
)

// DefaultMaxDigits bounds how many candidates Digits will enumerate (10^n).
const DefaultMaxDigits = 6

// Digits is the Numberle source: any string of decimal digits is a word.
type Digits struct {
	MaxLength int
}

func (d Digits) space(length int) int {
	limit := d.MaxLength
	if limit <= 0 {
		limit = DefaultMaxDigits
	}
	if length <= 0 || length > limit {
		return 0
	}
	n := 1
	for i := 0; i < length; i++ {
		n *= 10
	}
	return n
}

// SecretCandidates enumerates every digit string of the given length, or
// nothing past MaxLength.
func (d Digits) SecretCandidates(length int) []string {
	n := d.space(length)
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%0*d", length, i)
	}
	return out
}

// DrawSecrets picks count distinct numbers without building the candidate
// list. Draws follow the same swap-remove order as picking from the sorted
// list, so a given Picker yields the same secrets either way.
func (d Digits) DrawSecrets(length, count int, p game.Picker) ([]string, error) {
	n := d.space(length)
	if count > n {
		return nil, game.ErrNotEnoughCandidates
	}
	// moved[i] is the value now sitting at position i after earlier swaps.
	moved := make(map[int]int, count)
	at := func(i int) int {
		if v, ok := moved[i]; ok {
			return v
		}
		return i
	}
	out := make([]string, 0, count)
	for size := n; len(out) < count; size-- {
		j := p.Intn(size)
		out = append(out, fmt.Sprintf("%0*d", length, at(j)))
		moved[j] = at(size - 1)
	}
	return out, nil
}

func (d Digits) IsValidGuess(word string, length int) bool {
	return utf8.RuneCountInString(word) == length && Numbers.Contains(word)
}

func (d Digits) Alphabet() Alphabet { return Numbers }
