package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/storage"
)

// AddStatusCommand adds the status command to the root command.
func AddStatusCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a per-outcome completion table",
		Long: `Display each outcome's completion for the selected day, with the best
outcome and any outcome under half done flagged for attention.

Examples:
  focusfive status
  focusfive status --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatusCmd(flags, newRepository(flags), os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runStatusCmd(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	date, err := resolveDate(flags, repo.Clock())
	if err != nil {
		return err
	}
	session, err := repo.LoadDay(date)
	if err != nil {
		return err
	}
	logWarnings(session.Warnings)

	statsView := session.Goals.Stats()
	if flags.Output == OutputJSON {
		return printJSON(w, map[string]any{"date": date.String(), "stats": statsView})
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"Outcome", "Done", "Total", "Percent"})
	for _, row := range statsView.ByOutcome {
		tw.AppendRow(table.Row{row.Outcome.Display(), row.Done, row.Total,
			fmt.Sprintf("%d%%", row.Percentage())})
	}
	tw.Render()

	_, _ = fmt.Fprintf(w, "\nOverall: %d/%d (%d%%)\n", statsView.Completed, statsView.Total, statsView.Percentage)
	if statsView.Total > 0 {
		_, _ = fmt.Fprintf(w, "Best outcome: %s\n", statsView.Best.Display())
	}
	for _, t := range statsView.NeedsAttention {
		_, _ = fmt.Fprintf(w, "Needs attention: %s\n", t.Display())
	}
	return nil
}
