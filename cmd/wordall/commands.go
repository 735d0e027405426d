package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/robalobadob/wordall/assets"
	"github.com/robalobadob/wordall/internal/config"
	"github.com/robalobadob/wordall/internal/words"
)

func newImportCmd(cfg *config.Config) *cobra.Command {
	var (
		kind   string
		latin1 bool
	)
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import word files into the SQLite word store",
		Long: `Reads one word per line from each file and stores them as answers or as
allowed guesses. Words already in the store are skipped.

Example:
  wordall import --sqlite data/words.db --kind answer answers.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.SQLite == "" {
				return errors.New("import needs --sqlite or WORDS_SQLITE")
			}
			l := words.MultiFileLoader{Paths: args}
			if latin1 {
				l.Encoding = charmap.ISO8859_1
			}
			ws, err := l.Load()
			if err != nil {
				return err
			}

			st, err := words.OpenSQLite(cfg.SQLite)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Import(cmd.Context(), words.Kind(kind), ws)
			if err != nil {
				return err
			}
			log.Info().Str("kind", kind).Int("read", len(ws)).Int("added", n).Msg("import done")
			fmt.Fprintf(cmd.OutOrStdout(), "added %d of %d %s words\n", n, len(ws), kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(words.KindAnswer), "answer or allowed")
	cmd.Flags().BoolVar(&latin1, "latin1", false, "Decode the files as ISO-8859-1")
	return cmd
}

func newVariantsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the variant presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := cfg.Variants()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBOARDS\tGUESSES\tLENGTH\tDESCRIPTION")
			for _, v := range vs {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", v.Name, v.Boards, v.MaxGuesses, v.WordLength, v.Description)
			}
			return tw.Flush()
		},
	}
}

func newRulesCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Explain how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := assets.Rules()
			if err != nil {
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("rules renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}
