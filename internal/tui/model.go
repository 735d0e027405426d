// Package tui is the terminal front end: a bubbletea model that shows one
// grid per board, takes guesses from a text input and records finished
// games in the stats store.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordall/internal/game"
	"github.com/robalobadob/wordall/internal/store"
	"github.com/robalobadob/wordall/internal/words"
)

const boardsPerRow = 4

// Model is the bubbletea model for one player.
type Model struct {
	session *game.Session
	results store.Store
	variant string
	keys    words.Alphabet

	input   textinput.Model
	message string
	stats   store.Stats
	width   int
	styles  Styles
	now     func() time.Time
}

// New wraps a started session. results may be nil, in which case nothing
// is recorded.
func New(sess *game.Session, results store.Store, variant string) Model {
	in := textinput.New()
	in.Placeholder = "guess"
	in.CharLimit = sess.Options().WordLength
	in.Width = sess.Options().WordLength + 1
	in.Focus()

	m := Model{
		session: sess,
		results: results,
		variant: variant,
		keys:    alphabetOf(sess.Options().Source),
		input:   in,
		styles:  DefaultStyles(),
		now:     time.Now,
	}
	m.refreshStats()
	return m
}

func alphabetOf(src game.Source) words.Alphabet {
	if a, ok := src.(interface{ Alphabet() words.Alphabet }); ok {
		return a.Alphabet()
	}
	return words.Letters
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			m.restart()
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != strings.ToUpper(v) {
		m.input.SetValue(strings.ToUpper(v))
	}
	return m, cmd
}

func (m *Model) submit() {
	word := m.input.Value()
	m.input.Reset()
	turn, err := m.session.Guess(word)
	switch {
	case errors.Is(err, game.ErrRoundAlreadyTerminal):
		m.message = "The round is over. Press ctrl+n for a new game."
		return
	case errors.Is(err, game.ErrInvalidGuessLength):
		m.message = fmt.Sprintf("Guesses must be %d long.", m.session.Options().WordLength)
		return
	case errors.Is(err, game.ErrGuessNotInValidSet):
		m.message = fmt.Sprintf("Not in word list: %s", strings.ToUpper(strings.TrimSpace(word)))
		return
	case err != nil:
		m.message = err.Error()
		return
	}
	m.message = "Guessed: " + strings.ToUpper(turn.Word)
	if turn.Status.Terminal() {
		m.record()
	}
}

func (m *Model) record() {
	if m.results == nil {
		return
	}
	r, err := store.ResultOf(m.session, m.now())
	if err != nil {
		log.Error().Err(err).Msg("build result")
		return
	}
	if err := m.results.Record(context.Background(), r); err != nil {
		log.Error().Err(err).Msg("record result")
		return
	}
	m.refreshStats()
}

func (m *Model) refreshStats() {
	if m.results == nil {
		return
	}
	st, err := m.results.Stats(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("load stats")
		return
	}
	m.stats = st
}

func (m *Model) restart() {
	next, err := m.session.Restart()
	if err != nil {
		m.message = "Could not start a new game: " + err.Error()
		return
	}
	m.session = next
	m.input.Reset()
	m.message = "New game."
}

// Session exposes the current session.
func (m Model) Session() *game.Session { return m.session }

// Message is the last feedback line.
func (m Model) Message() string { return m.message }

func (m Model) statusLine() string {
	switch m.session.Status() {
	case game.RoundWon:
		return "Congratulations, you won!"
	case game.RoundLost:
		return "You lost, too bad."
	}
	return "Make a guess."
}

func (m Model) View() string {
	var b strings.Builder
	round := m.session.Round()

	b.WriteString(m.styles.Title.Render("WORDALL " + strings.ToUpper(m.variant)))
	fmt.Fprintf(&b, "  guess %d/%d\n\n", round.GuessCount(), round.MaxGuesses())

	per := boardsPerRow
	if m.width > 0 {
		// Each board is roughly three cells per letter plus its border.
		if fit := m.width / (round.WordLength()*3 + 5); fit > 0 && fit < per {
			per = fit
		}
	}
	boards := round.Boards()
	for start := 0; start < len(boards); start += per {
		end := min(start+per, len(boards))
		cols := make([]string, 0, end-start)
		for _, bd := range boards[start:end] {
			cols = append(cols, m.renderBoard(bd, round.MaxGuesses()))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString(m.styles.Message.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	if round.Status().Terminal() {
		secrets := make([]string, len(boards))
		for i, bd := range boards {
			secrets[i] = strings.ToUpper(bd.Secret())
		}
		b.WriteString("Secrets: " + strings.Join(secrets, " "))
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter guess • ctrl+n new game • esc quit"))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf("played %d  wins %d  streak %d (best %d)",
		m.stats.Played, m.stats.Wins, m.stats.Streak, m.stats.MaxStreak)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderBoard(bd *game.Board, maxGuesses int) string {
	var rows []string
	history := bd.History()
	for i := 0; i < maxGuesses; i++ {
		var tiles []string
		if i < len(history) {
			for _, l := range history[i] {
				tiles = append(tiles, m.styles.Tile[l.Status].Render(strings.ToUpper(string(l.Char))))
			}
		} else {
			for j := 0; j < bd.WordLength(); j++ {
				tiles = append(tiles, m.styles.Empty.Render("#"))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	rows = append(rows, "", m.renderKeys(bd.Alphabet()))
	return m.styles.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderKeys(a game.Alphabet) string {
	var b strings.Builder
	for _, r := range string(m.keys) {
		b.WriteString(m.styles.Key[a.Get(r)].Render(strings.ToUpper(string(r))))
	}
	return b.String()
}
