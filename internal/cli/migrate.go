package cli

import (
	"fmt"

	"wordy/internal/database"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Apply database migrations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db, rootOpts.Logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Migrations applied (%s)\n", db.Dialect.Name())
			return nil
		},
	}
}
