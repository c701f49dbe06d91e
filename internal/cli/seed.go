package cli

import (
	"fmt"
	"os"

	"wordy/internal/clock"
	"wordy/internal/dictionary"
	"wordy/internal/domain"
	"wordy/internal/repository/sqldb"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	Dictionary  string
	Epoch       string
	ShuffleSeed int64
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the word schedule from a dictionary",
		Long: `Load a CSV dictionary, keep the five letter lowercase words and assign
one word per day starting at the epoch. The order is shuffled with a fixed
seed so the same inputs always give the same schedule.

Seeding only runs on an empty words table.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dictionary, "dictionary", "", "dictionary CSV (default DICTIONARY_PATH)")
	cmd.Flags().StringVar(&opts.Epoch, "epoch", "", "first scheduled date YYYY-MM-DD (default WORD_EPOCH or today)")
	cmd.Flags().Int64Var(&opts.ShuffleSeed, "shuffle-seed", 1, "seed for the schedule shuffle")

	return cmd
}

func runSeed(rootOpts *RootOptions, opts *SeedOptions, cmd *cobra.Command) error {
	db, err := rootOpts.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()
	cfg := rootOpts.Config

	epoch, err := seedEpoch(rootOpts, opts)
	if err != nil {
		return err
	}

	repo := sqldb.NewWordRepo(db)
	count, err := repo.CountWords()
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("words table already holds %d words, refusing to reseed", count)
	}

	path := opts.Dictionary
	if path == "" {
		path = cfg.Dictionary.Path
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, stats, err := dictionary.LoadCSV(f)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("dictionary %s has no playable words", path)
	}

	schedule := dictionary.Schedule(words, epoch, opts.ShuffleSeed)
	if err := repo.SeedWords(schedule); err != nil {
		return err
	}

	rootOpts.Logger.Info("Words seeded",
		zap.String("dictionary", path),
		zap.Int("kept", stats.Kept),
		zap.Int("rejected", stats.Rejected),
		zap.Int("proper_nouns", stats.ProperNouns),
		zap.Int("duplicates", stats.Duplicates),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Seeded %d words from %s to %s\n",
		len(schedule), schedule[0].Date, schedule[len(schedule)-1].Date)
	fmt.Fprintf(out, "  read %d rows, dropped %d (%d proper nouns, %d duplicates)\n",
		stats.Total, stats.Rejected+stats.Duplicates, stats.ProperNouns, stats.Duplicates)
	return nil
}

func seedEpoch(rootOpts *RootOptions, opts *SeedOptions) (domain.Date, error) {
	if opts.Epoch != "" {
		return domain.ParseDate(opts.Epoch)
	}

	loc, err := rootOpts.Config.Location()
	if err != nil {
		return domain.Date{}, err
	}
	return rootOpts.Config.Epoch(clock.NewSystem(loc).Today())
}
