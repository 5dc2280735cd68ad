package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/optdeps/internal/output"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List recorded reports",
		Long: `List reports saved with --record, newest first.

Use 'optdeps history show ID' to print a recorded report again and
'optdeps history delete ID' to remove one.`,
		Args: cobra.NoArgs,
		RunE: runHistoryList,
	}

	historyShowCmd = &cobra.Command{
		Use:   "show ID",
		Short: "Print a recorded report",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}

	historyDeleteCmd = &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a recorded report",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryDelete,
	}
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to list (0 for all)")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output.RenderRunTable(runs))
	return err
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	_, reports, err := st.GetRun(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return output.WriteJSON(out, reports)
	}
	return output.NewTextWriter(out).WriteAll(reports)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteRun(id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %d\n", id)
	return err
}

func parseRunID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run ID %q", s)
	}
	return id, nil
}
