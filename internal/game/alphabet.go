package game

// AlphabetStatus is the keyboard hint for one letter on one board.
type AlphabetStatus int

const (
	NotGuessed AlphabetStatus = iota
	Found
	FoundElsewhere
	Unused
)

func (s AlphabetStatus) String() string {
	switch s {
	case NotGuessed:
		return "not_guessed"
	case Found:
		return "found"
	case FoundElsewhere:
		return "found_elsewhere"
	case Unused:
		return "unused"
	}
	return "?"
}

// Alphabet maps guessed letters to their hint; missing letters are NotGuessed.
type Alphabet map[rune]AlphabetStatus

// Get returns the hint for r.
func (a Alphabet) Get(r rune) AlphabetStatus { return a[r] }

// apply folds one record in:
//   - Correct promotes to Found from any state.
//   - Present promotes to FoundElsewhere unless already Found.
//   - Absent only marks a letter Unused if nothing else was learned about it.
//     A repeated letter can be Absent in one slot and Present in another.
func (a Alphabet) apply(rec GuessRecord) {
	for _, l := range rec {
		switch l.Status {
		case Correct:
			a[l.Char] = Found
		case Present:
			if a[l.Char] != Found {
				a[l.Char] = FoundElsewhere
			}
		case Absent:
			if a[l.Char] == NotGuessed {
				a[l.Char] = Unused
			}
		}
	}
}
