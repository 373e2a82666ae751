package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddObjectiveCommand adds the objective command group to the root command.
func AddObjectiveCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "objective",
		Short: "Manage long-term objectives",
		Long: `Objectives are multi-month goals within one outcome. Daily actions can
be linked to objectives, and indicators measure progress toward them.

Examples:
  focusfive objective add work "Grow revenue to $1M ARR"
  focusfive objective list
  focusfive objective link work 1 <objective-id>
  focusfive objective unlink work 1 <objective-id>`,
	}

	addObjAdd := &cobra.Command{
		Use:   "add <outcome> <title>",
		Short: "Create an objective",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObjectiveAdd(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	}
	cmd.AddCommand(addObjAdd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runObjectiveList(flags, newRepository(flags), os.Stdout)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "link <outcome> <index> <objective-id>",
		Short: "Link a day's action to an objective",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObjectiveLink(flags, newRepository(flags), args[0], args[1], args[2], true, os.Stdout)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "unlink <outcome> <index> <objective-id>",
		Short: "Remove an action's objective link",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObjectiveLink(flags, newRepository(flags), args[0], args[1], args[2], false, os.Stdout)
		},
	})
	parent.AddCommand(cmd)
}

func runObjectiveAdd(flags *GlobalFlags, repo *storage.Repository, outcomeArg, title string, w io.Writer) error {
	outcome, err := parseOutcomeArg(outcomeArg)
	if err != nil {
		return err
	}

	data, err := repo.Objectives()
	if err != nil {
		return err
	}

	obj, err := domain.NewObjective(outcome, title)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	data.Add(*obj)

	repo.MarkDirty(storage.ComponentObjectives)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, obj)
	}
	_, _ = fmt.Fprintf(w, "Objective created: %s (%s)\n", obj.Title, obj.ID)
	return nil
}

func runObjectiveList(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	data, err := repo.Objectives()
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, data)
	}

	if len(data.Objectives) == 0 {
		_, _ = fmt.Fprintln(w, "No objectives yet")
		return nil
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "Outcome", "Title", "Status", "Start"})
	for i := range data.Objectives {
		o := &data.Objectives[i]
		tw.AppendRow(table.Row{o.ID, o.Domain, o.Title, o.Status, o.Start.String()})
	}
	tw.Render()
	return nil
}

func runObjectiveLink(flags *GlobalFlags, repo *storage.Repository, outcomeArg, indexArg, objectiveID string, link bool, w io.Writer) error {
	outcome, err := parseOutcomeArg(outcomeArg)
	if err != nil {
		return err
	}

	// The objective must exist before an action can point at it.
	data, err := repo.Objectives()
	if err != nil {
		return err
	}
	if _, err := data.Find(objectiveID); err != nil {
		return errors.NewExitCode2Error(err)
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
	action := &o.Actions[idx]

	verb := "Linked"
	if link {
		action.LinkObjective(objectiveID)
	} else {
		verb = "Unlinked"
		if !action.UnlinkObjective(objectiveID) {
			return errors.NewExitCode2Error(
				errors.Wrapf(errors.ErrNotFound, "action %d is not linked to %s", idx+1, objectiveID))
		}
	}
	syncMetaObjective(session, outcome, idx)

	repo.MarkDirty(storage.ComponentGoals, storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, action)
	}
	_, _ = fmt.Fprintf(w, "%s %s action %d and objective %s\n", verb, outcome.Display(), idx+1, objectiveID)
	return nil
}

// syncMetaObjective mirrors an action's primary objective into the sidecar.
func syncMetaObjective(session *storage.DaySession, outcome domain.OutcomeType, idx int) {
	list := session.Meta.List(outcome)
	if idx < len(list) {
		list[idx].ObjectiveID = session.Goals.Outcome(outcome).Actions[idx].ObjectiveID
		session.Meta.SetList(outcome, list)
	}
}
