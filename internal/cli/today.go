package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/storage"
)

// todayView is the JSON shape of the today command's output.
type todayView struct {
	Date     string                 `json:"date"`
	Greeting string                 `json:"greeting"`
	Goals    *domain.DailyGoals     `json:"goals"`
	Stats    domain.CompletionStats `json:"stats"`
}

// AddTodayCommand adds the today command to the root command.
func AddTodayCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the day's goals and completion",
		Long: `Display the selected day's outcomes, actions, and completion stats.

In the morning (5am-noon) the command also surfaces unfinished actions
from the most recent previous day so they can be carried over.

Examples:
  focusfive today                 # Today's goals
  focusfive today --date 2025-01-14
  focusfive today --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToday(flags, newRepository(flags), os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runToday(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	date, err := resolveDate(flags, repo.Clock())
	if err != nil {
		return err
	}

	session, err := repo.LoadDay(date)
	if err != nil {
		return err
	}
	logWarnings(session.Warnings)

	phase := domain.PhaseForHour(repo.Clock().Now().Hour())
	view := todayView{
		Date:     date.String(),
		Greeting: phase.Greeting(),
		Goals:    session.Goals,
		Stats:    session.Goals.Stats(),
	}

	if flags.Output == OutputJSON {
		return printJSON(w, view)
	}

	if !flags.Quiet {
		_, _ = fmt.Fprintf(w, "%s\n\n", view.Greeting)
	}
	_, _ = fmt.Fprintf(w, "%s", renderDay(session))

	stats := view.Stats
	_, _ = fmt.Fprintf(w, "\nCompleted %d/%d (%d%%)\n", stats.Completed, stats.Total, stats.Percentage)

	if phase == domain.PhaseMorning {
		printYesterdayContext(repo, date, w)
	}
	return nil
}

// renderDay formats one day's outcomes and actions as text.
func renderDay(session *storage.DaySession) string {
	var b []byte
	for _, outcome := range session.Goals.Outcomes() {
		header := outcome.OutcomeType.Display()
		if outcome.Goal != "" {
			header += " (Goal: " + outcome.Goal + ")"
		}
		b = append(b, header...)
		b = append(b, '\n')
		for i := range outcome.Actions {
			a := &outcome.Actions[i]
			line := fmt.Sprintf("  %d. %s %s\n", i+1, statusGlyph(a.Status), a.Text)
			b = append(b, line...)
		}
	}
	return string(b)
}

// printYesterdayContext shows unfinished actions from the most recent
// previous day, if any.
func printYesterdayContext(repo *storage.Repository, today domain.Date, w io.Writer) {
	prev, prevDate, err := repo.Goals().Yesterday(today)
	if err != nil {
		return
	}

	var open []string
	for _, outcome := range prev.Outcomes() {
		for i := range outcome.Actions {
			a := &outcome.Actions[i]
			if !a.Completed && a.Text != "" {
				open = append(open, fmt.Sprintf("%s: %s", outcome.OutcomeType.Display(), a.Text))
			}
		}
	}
	if len(open) == 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\nUnfinished from %s (run 'focusfive carryover' to pull forward):\n", prevDate)
	for _, line := range open {
		_, _ = fmt.Fprintf(w, "  - %s\n", line)
	}
}
