package app

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/optdeps/internal/config"
	"github.com/blackwell-systems/optdeps/internal/optdeps"
	"github.com/blackwell-systems/optdeps/internal/pacman"
	"github.com/blackwell-systems/optdeps/internal/scanner"
)

// backend is what the commands need from the package manager.
type backend interface {
	scanner.Backend
	LocalDBPath() string
	LockPath() string
}

var (
	dbPath     string
	verbose    bool
	explicit   bool
	installed  bool
	jsonOutput bool
	record     bool

	// newBackend is swapped out in tests.
	newBackend = func() backend { return pacman.NewClient() }

	// RootCmd is the root command for optdeps
	RootCmd = &cobra.Command{
		Use:   "optdeps",
		Short: "List optional dependencies of installed pacman packages",
		Long: `optdeps reports, for each installed package, the optional dependencies
that are not installed yet. Packages with nothing to report are skipped.

The report is read from 'pacman -Qi'; optdeps never installs or removes
anything.`,
		Example: `  # Optional deps missing for every installed package
  optdeps

  # Only packages you installed yourself
  optdeps --explicit

  # Show already installed optional deps too
  optdeps --installed

  # Machine-readable output, saved to history
  optdeps --json --record`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: runReport,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: ~/.local/state/optdeps/history.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Report flags, shared with watch
	RootCmd.PersistentFlags().BoolVarP(&explicit, "explicit", "e", false, "only list dependencies for explicitly installed packages")
	RootCmd.PersistentFlags().BoolVarP(&installed, "installed", "i", false, "include dependencies that are already installed")
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")
	RootCmd.PersistentFlags().BoolVar(&record, "record", false, "save the report to the history database")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(historyCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.ExecuteContext(context.Background())
}

// currentOptions returns the filter options selected on the command line.
func currentOptions() optdeps.Options {
	return optdeps.Options{OnlyExplicit: explicit, IncludeInstalled: installed}
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return config.DefaultDBPath()
}
