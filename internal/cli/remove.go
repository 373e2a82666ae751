package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/storage"
)

// AddRemoveCommand adds the remove command to the root command.
func AddRemoveCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "remove <outcome> <index>",
		Short: "Remove an action from an outcome",
		Long: `Remove the action at the given 1-based index. Later actions shift up
and keep their own metadata. An outcome always keeps at least one
action; removing the last one is refused.

Examples:
  focusfive remove work 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runRemove(flags *GlobalFlags, repo *storage.Repository, outcomeArg, indexArg string, w io.Writer) error {
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
	idx, err := parseIndexArg(indexArg, len(o.Actions))
	if err != nil {
		return err
	}
	removed := o.Actions[idx].Text

	if err := o.RemoveAction(idx); err != nil {
		return err
	}

	// Shift the sidecar in step so surviving slots keep their metadata.
	list := session.Meta.List(outcome)
	if idx < len(list) {
		list = append(list[:idx], list[idx+1:]...)
		session.Meta.SetList(outcome, list)
	}
	repo.Engine().Reconcile(session.Meta, session.Goals)

	repo.MarkDirty(storage.ComponentGoals, storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, session.Goals)
	}
	_, _ = fmt.Fprintf(w, "Removed %s action %d: %s\n", outcome.Display(), idx+1, removed)
	return nil
}
