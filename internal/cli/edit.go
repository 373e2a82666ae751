package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddEditCommand adds the edit command to the root command.
func AddEditCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "edit <outcome> <index> <text>",
		Short: "Replace an action's text",
		Long: `Replace the text of an action, addressed by outcome and 1-based index.

The action keeps its id, status, and completion; only the text changes.

Examples:
  focusfive edit work 2 "Prep the board deck"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(flags, newRepository(flags), args[0], args[1], args[2], os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runEdit(flags *GlobalFlags, repo *storage.Repository, outcomeArg, indexArg, text string, w io.Writer) error {
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
	idx, err := parseIndexArg(indexArg, len(o.Actions))
	if err != nil {
		return err
	}

	if truncated := o.Actions[idx].SetText(text); truncated {
		logger := GetLogger()
		logger.Warn().Int("limit", constants.MaxActionLength).Msg("action text truncated")
	}

	repo.MarkDirty(storage.ComponentGoals)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, session.Goals)
	}
	_, _ = fmt.Fprintf(w, "Updated %s action %d: %s\n", outcome.Display(), idx+1, o.Actions[idx].Text)
	return nil
}
