package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordall/internal/game"
)

var (
	ColorCorrect = lipgloss.Color("#6aaa64")
	ColorPresent = lipgloss.Color("#c9b458")
	ColorAbsent  = lipgloss.Color("#787c7e")
	ColorEmpty   = lipgloss.Color("#3a3a3c")
	ColorText    = lipgloss.Color("#ffffff")
)

// Styles holds every style the view uses.
type Styles struct {
	Title   lipgloss.Style
	Tile    map[game.LetterStatus]lipgloss.Style
	Empty   lipgloss.Style
	Key     map[game.AlphabetStatus]lipgloss.Style
	Board   lipgloss.Style
	Message lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
	Footer  lipgloss.Style
}

func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(ColorText)
	key := lipgloss.NewStyle()
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(ColorCorrect),
		Tile: map[game.LetterStatus]lipgloss.Style{
			game.Correct: tile.Background(ColorCorrect),
			game.Present: tile.Background(ColorPresent),
			game.Absent:  tile.Background(ColorAbsent),
		},
		Empty: tile.Foreground(ColorEmpty),
		Key: map[game.AlphabetStatus]lipgloss.Style{
			game.NotGuessed:     key,
			game.Found:          key.Foreground(ColorCorrect).Bold(true),
			game.FoundElsewhere: key.Foreground(ColorPresent).Bold(true),
			game.Unused:         key.Foreground(ColorEmpty),
		},
		Board:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorEmpty).Padding(0, 1).MarginRight(1),
		Message: lipgloss.NewStyle().Italic(true),
		Status:  lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Foreground(ColorAbsent),
		Footer:  lipgloss.NewStyle().Foreground(ColorAbsent),
	}
}
