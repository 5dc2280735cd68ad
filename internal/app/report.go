package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
	"github.com/blackwell-systems/optdeps/internal/output"
	"github.com/blackwell-systems/optdeps/internal/scanner"
	"github.com/blackwell-systems/optdeps/internal/store"
)

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sc := scanner.New(newBackend(), currentOptions(), loggerFromContext(ctx))
	return printReport(ctx, sc, cmd.OutOrStdout())
}

// printReport scans every package and writes the result to out. Text
// output is written package by package as the scan goes; JSON is written
// once the scan has finished. With --record the finished run is saved.
func printReport(ctx context.Context, sc *scanner.Scanner, out io.Writer) error {
	var reports []optdeps.Report
	tw := output.NewTextWriter(out)

	sum, err := sc.Scan(ctx, func(r optdeps.Report) error {
		reports = append(reports, r)
		if jsonOutput {
			return nil
		}
		return tw.WriteReport(r)
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := output.WriteJSON(out, reports); err != nil {
			return err
		}
	}

	if record {
		return recordRun(ctx, sc.Options(), sum, reports)
	}
	return nil
}

func recordRun(ctx context.Context, opts optdeps.Options, sum scanner.Summary, reports []optdeps.Report) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run := &store.Run{
		Options:  opts,
		Packages: sum.Packages,
		Reported: sum.Reported,
		Entries:  sum.Entries,
	}
	id, err := st.SaveRun(run, reports)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	loggerFromContext(ctx).Info("recorded run", "id", id, "reported", sum.Reported)
	return nil
}

// openStore opens the history database and makes sure its tables exist.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return st, nil
}
