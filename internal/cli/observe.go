package cli

import (
	"context"
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

// AddObserveCommand adds the observe command to the root command.
func AddObserveCommand(parent *cobra.Command, flags *GlobalFlags) {
	var note, actionID string

	cmd := &cobra.Command{
		Use:   "observe <indicator-id> <value>",
		Short: "Record an indicator measurement",
		Long: `Append one measurement to the observation log. The log is append-only;
corrections are new observations, never edits.

Examples:
  focusfive observe <indicator-id> 120
  focusfive observe <indicator-id> 3 --note "post-launch bump"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObserve(flags, newRepository(flags), args[0], args[1], note, actionID, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	cmd.Flags().StringVar(&actionID, "action", "", "action id that produced this measurement")
	parent.AddCommand(cmd)
}

func runObserve(flags *GlobalFlags, repo *storage.Repository, indicatorID, valueArg, note, actionID string, w io.Writer) error {
	value, err := strconv.ParseFloat(valueArg, 64)
	if err != nil {
		return errors.NewExitCode2Error(
			errors.Wrapf(errors.ErrInvalidArgument, "value %q is not a number", valueArg))
	}

	indicators, err := repo.Indicators()
	if err != nil {
		return err
	}
	ind, err := indicators.Find(indicatorID)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	date, err := resolveDate(flags, repo.Clock())
	if err != nil {
		return err
	}

	obs := domain.NewObservation(ind.ID, date, value, ind.Unit)
	obs.Note = note
	obs.ActionID = actionID

	if err := repo.Observations().Append(&obs); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, obs)
	}
	_, _ = fmt.Fprintf(w, "Recorded %s = %s %s on %s\n", ind.Name, valueArg, ind.Unit.Label(), date)
	return nil
}

// AddObservationsCommand adds the observations command to the root command.
func AddObservationsCommand(parent *cobra.Command, flags *GlobalFlags) {
	var indicatorID, from, to string

	cmd := &cobra.Command{
		Use:   "observations",
		Short: "List recorded measurements",
		Long: `List observations from the append-only log, optionally filtered by
indicator and date range.

Examples:
  focusfive observations
  focusfive observations --indicator <id> --from 2025-01-01 --to 2025-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runObservations(cmd.Context(), flags, newRepository(flags), indicatorID, from, to, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&indicatorID, "indicator", "", "filter by indicator id")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	parent.AddCommand(cmd)
}

func runObservations(ctx context.Context, flags *GlobalFlags, repo *storage.Repository, indicatorID, fromArg, toArg string, w io.Writer) error {
	filter := storage.ObservationFilter{IndicatorID: indicatorID}

	if fromArg != "" {
		from, err := domain.ParseDate(fromArg)
		if err != nil {
			return errors.NewExitCode2Error(err)
		}
		filter.From = from
	}
	if toArg != "" {
		to, err := domain.ParseDate(toArg)
		if err != nil {
			return errors.NewExitCode2Error(err)
		}
		filter.To = to
	}

	observations, err := repo.Observations().Read(ctx, filter)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		if observations == nil {
			observations = []domain.Observation{}
		}
		return printJSON(w, observations)
	}

	if len(observations) == 0 {
		_, _ = fmt.Fprintln(w, "No observations recorded")
		return nil
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"Date", "Indicator", "Value", "Unit", "Source", "Note"})
	for i := range observations {
		obs := &observations[i]
		tw.AppendRow(table.Row{obs.When.String(), obs.IndicatorID,
			strconv.FormatFloat(obs.Value, 'f', -1, 64), obs.Unit.Label(), obs.Source, obs.Note})
	}
	tw.Render()
	return nil
}
