// Command wordall plays Wordle and its multi-board variants in the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordall/internal/config"
	"github.com/robalobadob/wordall/internal/game"
	"github.com/robalobadob/wordall/internal/store"
	"github.com/robalobadob/wordall/internal/tui"
)

func main() {
	root, logs := newRootCmd()
	if err := execute(root, logs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the command tree and closes the log file afterwards, also
// when a command fails.
func execute(root *cobra.Command, logs io.Closer) error {
	err := root.Execute()
	if cerr := logs.Close(); err == nil {
		err = cerr
	}
	return err
}

// flags holds the raw flag values; only the ones set on the command line
// override the environment.
type flags struct {
	variant      string
	variantsFile string
	length       int
	boards       int
	guesses      int
	seed         uint64
	daily        bool
	answers      string
	allowed      string
	scowl        string
	scowlSize    int
	sqlite       string
}

func newRootCmd() (*cobra.Command, *closer) {
	var f flags
	cfg := &config.Config{}
	logFile := &closer{}

	root := &cobra.Command{
		Use:   "wordall",
		Short: "Wordle, Quordle, Octordle and Numberle in the terminal",
		Long: `wordall plays one or more Wordle boards against a single shared guess budget.

Every guess is played on every board that is still open. The round is won
when every board is solved and lost when the guesses run out.

Examples:
  wordall
  wordall --variant quordle --daily
  wordall --boards 2 --guesses 7 --answers answers.txt --allowed allowed.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			f.apply(cmd, &c)
			*cfg = c
			w, err := setupLogging(cfg.LogLevel, cfg.LogFile, cmd.ErrOrStderr(), cmd.Name() == "wordall")
			if err != nil {
				return err
			}
			logFile.c = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, *cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.variant, "variant", "wordle", "Variant preset, see: wordall variants")
	pf.StringVar(&f.variantsFile, "variants-file", "", "YAML file with extra variant presets")
	pf.StringVar(&f.sqlite, "sqlite", "", "SQLite word store (or set WORDS_SQLITE)")

	fl := root.Flags()
	fl.IntVar(&f.length, "length", 0, "Word length (overrides the variant)")
	fl.IntVar(&f.boards, "boards", 0, "Number of boards (overrides the variant)")
	fl.IntVar(&f.guesses, "guesses", 0, "Guess budget (overrides the variant)")
	fl.Uint64Var(&f.seed, "seed", 0, "Seed the secret picker for a repeatable game")
	fl.BoolVar(&f.daily, "daily", false, "Play today's shared secrets")
	fl.StringVar(&f.answers, "answers", "", "Answers file, one word per line")
	fl.StringVar(&f.allowed, "allowed", "", "Extra allowed guesses file")
	fl.StringVar(&f.scowl, "scowl", "", "SCOWL final/ directory to draw words from")
	fl.IntVar(&f.scowlSize, "scowl-size", 50, "Largest SCOWL size to include (1-100)")

	root.AddCommand(newImportCmd(cfg), newVariantsCmd(cfg), newRulesCmd())
	return root, logFile
}

func (f flags) apply(cmd *cobra.Command, c *config.Config) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("variant") {
		c.Variant = f.variant
	}
	if changed("variants-file") {
		c.VariantsFile = f.variantsFile
	}
	if changed("sqlite") {
		c.SQLite = f.sqlite
	}
	if changed("length") {
		c.WordLength = f.length
	}
	if changed("boards") {
		c.Boards = f.boards
	}
	if changed("guesses") {
		c.MaxGuesses = f.guesses
	}
	if changed("seed") {
		c.Seed, c.HasSeed = f.seed, true
	}
	if changed("daily") {
		c.Daily = f.daily
	}
	if changed("answers") {
		c.AnswersFile = f.answers
	}
	if changed("allowed") {
		c.AllowedFile = f.allowed
	}
	if changed("scowl") {
		c.ScowlDir = f.scowl
	}
	if changed("scowl-size") {
		c.ScowlSize = f.scowlSize
	}
}

func play(cmd *cobra.Command, cfg config.Config) error {
	opts, v, err := cfg.Options(cmd.Context(), time.Now())
	if err != nil {
		return err
	}
	logger := log.Logger
	opts.Logger = &logger

	sess, err := game.NewSession(opts)
	if err != nil {
		return err
	}
	log.Info().Str("variant", v.Name).Str("session", sess.ID()).Msg("starting game")

	p := tea.NewProgram(tui.New(sess, store.NewMemoryStore(), v.Name), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// setupLogging sets the global level and routes logs to LOG_FILE. The game
// itself owns the terminal, so without a file its logs are dropped; other
// commands log to stderr.
func setupLogging(level, file string, stderr io.Writer, interactive bool) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL %q", config.ErrInvalidConfig, level)
	}
	zerolog.SetGlobalLevel(lvl)
	switch {
	case file != "":
		fh, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(fh).With().Timestamp().Logger()
		return fh, nil
	case interactive:
		log.Logger = zerolog.New(io.Discard)
	default:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()
	}
	return nil, nil
}

// closer holds the log file opened for the current run, if any.
type closer struct{ c io.Closer }

func (c *closer) Close() error {
	if c.c == nil {
		return nil
	}
	err := c.c.Close()
	c.c = nil
	return err
}
