// Package assets holds the files compiled into the binary: the default
// five-letter word lists and the rules page.
package assets

import "embed"

// Names of the embedded word lists, one word per line.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt rules.md
var FS embed.FS

// Rules returns the how-to-play text as markdown.
func Rules() (string, error) {
	b, err := FS.ReadFile("rules.md")
	return string(b), err
}
