package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/optdeps/internal/scanner"
	"github.com/blackwell-systems/optdeps/internal/watcher"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-print the report whenever packages change",
		Long: `Print the optional dependency report, then print it again each time
pacman installs, upgrades or removes packages.

Changes are detected on pacman's local database directory. The report is
refreshed once the database has been quiet for the debounce period and
pacman has released its lock.`,
		Example: `  # Watch explicitly installed packages (Ctrl+C to stop)
  optdeps watch --explicit

  # Record every refreshed report
  optdeps watch --record`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before refreshing")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()
	b := newBackend()
	sc := scanner.New(b, currentOptions(), logger)

	if err := printReport(ctx, sc, out); err != nil {
		return ignoreCanceled(err)
	}

	w := watcher.New(b.LocalDBPath(), watcher.Options{
		Debounce: watchDebounce,
		LockFile: b.LockPath(),
	}, logger)

	logger.Info("watching for package changes (press Ctrl+C to stop)", "dir", b.LocalDBPath())
	err := w.Run(ctx, func(ctx context.Context) error {
		logger.Info("packages changed, refreshing report")
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		return printReport(ctx, sc, out)
	})
	return ignoreCanceled(err)
}

// ignoreCanceled treats an interrupted scan as a clean exit.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
