package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddIndicatorCommand adds the indicator command group to the root command.
func AddIndicatorCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "indicator",
		Short: "Manage progress indicators",
		Long: `Indicators are numeric measures tied to objectives: deep work hours,
revenue, workouts per week. Record values with 'focusfive observe'.

Units: count, minutes, dollars, percent, or custom:<label>.

Examples:
  focusfive indicator add "deep work hours" --unit minutes --objective <id>
  focusfive indicator add "MRR" --unit dollars --target 85000
  focusfive indicator list`,
	}

	var unit, objectiveID, target string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an indicator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndicatorAdd(flags, newRepository(flags), args[0], unit, objectiveID, target, os.Stdout)
		},
	}
	addCmd.Flags().StringVar(&unit, "unit", "count", "unit (count|minutes|dollars|percent|custom:<label>)")
	addCmd.Flags().StringVar(&objectiveID, "objective", "", "objective this indicator measures")
	addCmd.Flags().StringVar(&target, "target", "", "target value")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndicatorList(flags, newRepository(flags), os.Stdout)
		},
	})
	parent.AddCommand(cmd)
}

func runIndicatorAdd(flags *GlobalFlags, repo *storage.Repository, name, unitArg, objectiveID, targetArg string, w io.Writer) error {
	data, err := repo.Indicators()
	if err != nil {
		return err
	}

	if objectiveID != "" {
		objectives, oerr := repo.Objectives()
		if oerr != nil {
			return oerr
		}
		if _, oerr := objectives.Find(objectiveID); oerr != nil {
			return errors.NewExitCode2Error(oerr)
		}
	}

	ind, err := domain.NewIndicator(name, domain.ParseUnit(unitArg))
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	ind.ObjectiveID = objectiveID

	if targetArg != "" {
		target, perr := strconv.ParseFloat(targetArg, 64)
		if perr != nil {
			return errors.NewExitCode2Error(
				errors.Wrapf(errors.ErrInvalidArgument, "target %q is not a number", targetArg))
		}
		ind.Target = &target
	}

	data.Add(*ind)

	repo.MarkDirty(storage.ComponentIndicators)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, ind)
	}
	_, _ = fmt.Fprintf(w, "Indicator created: %s (%s)\n", ind.Name, ind.ID)
	return nil
}

func runIndicatorList(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	data, err := repo.Indicators()
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, data)
	}

	if len(data.Indicators) == 0 {
		_, _ = fmt.Fprintln(w, "No indicators yet")
		return nil
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Unit", "Kind", "Target", "Active"})
	for i := range data.Indicators {
		ind := &data.Indicators[i]
		target := ""
		if ind.Target != nil {
			target = strconv.FormatFloat(*ind.Target, 'f', -1, 64)
		}
		tw.AppendRow(table.Row{ind.ID, ind.Name, ind.Unit.Label(), ind.Kind, target, ind.Active})
	}
	tw.Render()
	return nil
}
