package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddCheckCommand adds the check command to the root command.
func AddCheckCommand(parent *cobra.Command, flags *GlobalFlags) {
	var setStatus string

	cmd := &cobra.Command{
		Use:   "check <outcome> <index>",
		Short: "Cycle an action's status",
		Long: `Advance an action through the status cycle:
planned -> in_progress -> done -> skipped -> blocked -> planned.

Use --status to jump straight to a specific state instead of cycling.
Completion in the Markdown file follows the status: the checkbox is
checked exactly when the status is done.

Examples:
  focusfive check work 1
  focusfive check health 2 --status done
  focusfive check family 1 --status blocked`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(flags, newRepository(flags), args[0], args[1], setStatus, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&setStatus, "status", "", "set status directly (planned|in_progress|done|skipped|blocked)")
	parent.AddCommand(cmd)
}

func runCheck(flags *GlobalFlags, repo *storage.Repository, outcomeArg, indexArg, setStatus string, w io.Writer) error {
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
	action := &o.Actions[idx]

	if setStatus != "" {
		status, perr := parseStatusArg(setStatus)
		if perr != nil {
			return perr
		}
		action.SetStatus(status)
	} else {
		action.CycleStatus()
	}
	setMetaStatus(session.Meta, outcome, idx, action.Status)

	repo.MarkDirty(storage.ComponentGoals, storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, action)
	}
	_, _ = fmt.Fprintf(w, "%s %s action %d: %s\n", statusGlyph(action.Status), outcome.Display(), idx+1, action.Status)
	return nil
}

// setMetaStatus writes a status into the sidecar list for one slot.
func setMetaStatus(meta *domain.DayMeta, outcome domain.OutcomeType, idx int, status domain.ActionStatus) {
	list := meta.List(outcome)
	if idx < len(list) {
		list[idx].Status = status
		meta.SetList(outcome, list)
	}
}
