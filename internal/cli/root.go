// Package cli implements wordyctl, the operator command line.
package cli

import (
	"fmt"
	"time"

	"wordy/internal/config"
	"wordy/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags and shared state for all commands.
type RootOptions struct {
	Verbose bool

	// Config is read from the environment when nil.
	Config *config.Config
	// Logger defaults to a no-op logger, or a production logger with --verbose.
	Logger *zap.Logger
}

// cliRetryPolicy gives up quickly; operators rerun the command.
var cliRetryPolicy = database.RetryPolicy{Attempts: 3, Delay: time.Second}

// NewRootCommand creates the root command for wordyctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordyctl",
		Short: "Wordy operator tools",
		Long:  "Manage the Wordy database: apply migrations, seed the word schedule, look up words and run the solver.",
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewWordCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))

	return cmd
}

// setup resolves configuration and the logger
func (o *RootOptions) setup() error {
	if o.Logger == nil {
		if o.Verbose {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.Logger = logger
		} else {
			o.Logger = zap.NewNop()
		}
	}

	if o.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		o.Config = cfg
	}
	return nil
}

// openDatabase connects to the configured database
func (o *RootOptions) openDatabase() (*database.DB, error) {
	if err := o.setup(); err != nil {
		return nil, err
	}

	dialect, err := database.DialectFor(o.Config.Database.Type)
	if err != nil {
		return nil, err
	}
	return database.Connect(dialect, o.Config.DialectConfig(), cliRetryPolicy, o.Logger)
}
