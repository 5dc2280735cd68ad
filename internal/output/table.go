// Package output renders optional dependency reports and run history for
// the terminal.
//
// This package includes:
//   - A text writer that highlights package names and indents entries
//   - A JSON writer for scripting
//   - A table of recorded runs with relative timestamps
//
// Colour is used only when the destination is a TTY and NO_COLOR is unset.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/optdeps/internal/store"
)

// ColorEnabled returns true if w should receive ANSI colour codes.
// It checks that w is a TTY and that the NO_COLOR env var is not set.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return writerIsTTY(w)
}

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// RenderRunTable renders a table of recorded runs in the given order.
func RenderRunTable(runs []*store.Run) string {
	if len(runs) == 0 {
		return "No recorded runs found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-17s %-22s %-9s %-9s %s\n",
		"ID", "Recorded", "Flags", "Packages", "Reported", "Entries"))
	sb.WriteString(strings.Repeat("─", 74))
	sb.WriteString("\n")

	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-22s %-9d %-9d %d\n",
			run.ID,
			formatRelativeTime(run.CreatedAt),
			formatFlags(run),
			run.Packages,
			run.Reported,
			run.Entries))
	}

	return sb.String()
}

// formatFlags lists the command-line flags a run was recorded with.
func formatFlags(run *store.Run) string {
	var flags []string
	if run.Options.OnlyExplicit {
		flags = append(flags, "--explicit")
	}
	if run.Options.IncludeInstalled {
		flags = append(flags, "--installed")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, " ")
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24/7), "week")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
