package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/stats"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddStreakCommand adds the streak command to the root command.
func AddStreakCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current completion streak",
		Long: `Count consecutive days, ending at the selected day, with at least one
completed action. A missing or unreadable day ends the streak.

Examples:
  focusfive streak
  focusfive streak --date 2025-01-14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStreak(flags, newRepository(flags), os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runStreak(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	today, err := resolveDate(flags, repo.Clock())
	if err != nil {
		return err
	}

	load := func(date domain.Date) (*domain.DailyGoals, bool, error) {
		if !repo.Goals().Exists(date) {
			return nil, false, nil
		}
		goals, _, lerr := repo.Goals().Load(date)
		if lerr != nil {
			return nil, true, lerr
		}
		return goals, true, nil
	}
	streak := stats.Streak(today, load)

	if flags.Output == OutputJSON {
		return printJSON(w, map[string]any{"date": today.String(), "streak": streak})
	}

	switch streak {
	case 0:
		_, _ = fmt.Fprintln(w, "No streak yet. Complete an action today to start one.")
	case 1:
		_, _ = fmt.Fprintln(w, "1 day streak")
	default:
		_, _ = fmt.Fprintf(w, "%d day streak\n", streak)
	}
	return nil
}
