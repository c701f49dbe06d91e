package cli

import (
	"errors"
	"fmt"

	"wordy/internal/domain"
	"wordy/internal/repository/sqldb"

	"github.com/spf13/cobra"
)

// NewWordCommand creates the word command.
func NewWordCommand(rootOpts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:          "word",
		Short:        "Print the word scheduled for a date",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDate(date)
			if err != nil {
				return err
			}

			db, err := rootOpts.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			word, err := sqldb.NewWordRepo(db).GetWordByDate(d)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no word scheduled for %s", d)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", word.Date, word.ID, word.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
