package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddGoalCommand adds the goal command to the root command.
func AddGoalCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "goal <outcome> <text>",
		Short: "Set an outcome's goal line",
		Long: `Set the short goal shown in the outcome header, e.g.
"## Work (Goal: Ship v1)". Text longer than 100 characters is truncated
with a warning. An empty string clears the goal.

Examples:
  focusfive goal work "Ship v1"
  focusfive goal health ""`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoal(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runGoal(flags *GlobalFlags, repo *storage.Repository, outcomeArg, text string, w io.Writer) error {
	outcome, err := parseOutcomeArg(outcomeArg)
	if err != nil {
		return err
	}

	date, err := resolveDate(flags, repo.Clock())
	if err != nil {
		return err
	}
	session, err := repo.LoadDay(date)
	if err != nil {
		return err
	}
	logWarnings(session.Warnings)

	o := session.Goals.Outcome(outcome)
	if truncated := o.SetGoal(text); truncated {
		logger := GetLogger()
		logger.Warn().Int("limit", constants.MaxGoalLength).Msg("goal text truncated")
	}

	repo.MarkDirty(storage.ComponentGoals)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, session.Goals)
	}
	if o.Goal == "" {
		_, _ = fmt.Fprintf(w, "Cleared %s goal\n", outcome.Display())
	} else {
		_, _ = fmt.Fprintf(w, "%s goal: %s\n", outcome.Display(), o.Goal)
	}
	return nil
}
