package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddAddCommand adds the add command to the root command.
func AddAddCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "add <outcome> <text>",
		Short: "Add an action to an outcome",
		Long: `Add a new action to one of the three outcomes (work, health, family).

The action fills the first empty slot, or appends a new one up to the
cap of five actions per outcome. Text longer than 500 characters is
truncated with a warning.

Examples:
  focusfive add work "Call investors"
  focusfive add health "Morning run" --date 2025-01-14`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runAdd(flags *GlobalFlags, repo *storage.Repository, outcomeArg, text string, w io.Writer) error {
	outcome, err := parseOutcomeArg(outcomeArg)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "action text"))
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
	action, truncated := domain.NewAction(text)
	if truncated {
		logger := GetLogger()
		logger.Warn().Int("limit", constants.MaxActionLength).Msg("action text truncated")
	}

	placed := false
	for i := range o.Actions {
		if o.Actions[i].Text == "" {
			o.Actions[i] = action
			placed = true
			break
		}
	}
	if !placed {
		if err := o.AddAction(); err != nil {
			return err
		}
		o.Actions[len(o.Actions)-1] = action
	}

	repo.Engine().Reconcile(session.Meta, session.Goals)
	repo.MarkDirty(storage.ComponentGoals, storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, session.Goals)
	}
	_, _ = fmt.Fprintf(w, "Added to %s: %s\n", outcome.Display(), action.Text)
	return nil
}
