package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddReviewCommand adds the review command group to the root command.
func AddReviewCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Save or show a weekly review",
		Long: `A weekly review captures wins, challenges, learnings, and next actions
for the ISO week containing the selected day. Reviews are stored one
file per period under reviews/.

Examples:
  focusfive review save --wins "shipped v1" --challenges "late nights"
  focusfive review show
  focusfive review show --period 2025-W03`,
	}

	var wins, challenges, learnings, next string
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save this week's review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReviewSave(flags, newRepository(flags), wins, challenges, learnings, next, os.Stdout)
		},
	}
	saveCmd.Flags().StringVar(&wins, "wins", "", "comma-separated wins")
	saveCmd.Flags().StringVar(&challenges, "challenges", "", "comma-separated challenges")
	saveCmd.Flags().StringVar(&learnings, "learnings", "", "comma-separated learnings")
	saveCmd.Flags().StringVar(&next, "next", "", "comma-separated next actions")
	cmd.AddCommand(saveCmd)

	var period string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a saved review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReviewShow(flags, newRepository(flags), period, os.Stdout)
		},
	}
	showCmd.Flags().StringVar(&period, "period", "", "period id, e.g. 2025-W03 (default: current week)")
	cmd.AddCommand(showCmd)

	parent.AddCommand(cmd)
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func runReviewSave(flags *GlobalFlags, repo *storage.Repository, wins, challenges, learnings, next string, w io.Writer) error {
	date, err := resolveDate(flags, repo.Clock())
	if err != nil {
		return err
	}

	review := domain.NewWeeklyReview(date)
	review.Wins = splitList(wins)
	review.Challenges = splitList(challenges)
	review.Learnings = splitList(learnings)
	review.NextActions = splitList(next)

	if err := repo.Reviews().Save(&review); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, review)
	}
	_, _ = fmt.Fprintf(w, "Saved review for %s\n", review.Period)
	return nil
}

func runReviewShow(flags *GlobalFlags, repo *storage.Repository, period string, w io.Writer) error {
	if period == "" {
		date, err := resolveDate(flags, repo.Clock())
		if err != nil {
			return err
		}
		year, week := date.Time().ISOWeek()
		period = domain.WeekPeriodID(year, week)
	}

	review, err := repo.Reviews().Load(period)
	if err != nil {
		if isNotFoundErr(err) {
			return errors.NewExitCode2Error(err)
		}
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, review)
	}

	_, _ = fmt.Fprintf(w, "Review %s (%s to %s)\n", review.Period, review.Start, review.End)
	printReviewSection(w, "Wins", review.Wins)
	printReviewSection(w, "Challenges", review.Challenges)
	printReviewSection(w, "Learnings", review.Learnings)
	printReviewSection(w, "Next actions", review.NextActions)
	return nil
}

func printReviewSection(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  - %s\n", item)
	}
}
