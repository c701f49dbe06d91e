package cli

import (
	"fmt"

	"wordy/internal/dictionary"
	"wordy/internal/game"
	"wordy/internal/repository/sqldb"

	"github.com/spf13/cobra"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	Pattern string
	Found   string
	Miss    string
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "List seeded words matching known clues",
		Long: `List every seeded word that has the known letters at their positions,
contains all found letters and none of the missed ones.

Pattern positions use _ . or ? for unknown letters.`,
		Example:      "  wordyctl solve --pattern _or__ --found t --miss ch",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Pattern, "pattern", "_____", "known letters by position")
	cmd.Flags().StringVar(&opts.Found, "found", "", "letters somewhere in the word")
	cmd.Flags().StringVar(&opts.Miss, "miss", "", "letters not in the word")

	return cmd
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, cmd *cobra.Command) error {
	hits, err := game.ParsePattern(opts.Pattern)
	if err != nil {
		return err
	}

	db, err := rootOpts.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	words, err := sqldb.NewWordRepo(db).ListWords()
	if err != nil {
		return err
	}
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	index, err := dictionary.NewIndex(texts)
	if err != nil {
		return err
	}

	matches, err := game.PossibleWords(index, game.Filter{
		Hits:   hits,
		Found:  game.SplitLetters(opts.Found),
		Misses: game.SplitLetters(opts.Miss),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range matches {
		fmt.Fprintln(out, m)
	}
	if rootOpts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d words match\n", len(matches), index.Len())
	}
	return nil
}
