package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/reconcile"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddCarryoverCommand adds the carryover command to the root command.
func AddCarryoverCommand(parent *cobra.Command, flags *GlobalFlags) {
	var outcomeFilter string
	var only []string

	cmd := &cobra.Command{
		Use:   "carryover",
		Short: "Copy unfinished actions from the previous day",
		Long: `Copy incomplete actions from the most recent previous day (up to a
week back) into the selected day. Actions keep their position: slot N
from the previous day lands in slot N, and only if it is still empty.
Copied actions get fresh identity, planned status, and carry-over
origin; objective links come along.

Examples:
  focusfive carryover                    # Everything unfinished
  focusfive carryover --outcome work     # One outcome only
  focusfive carryover --only work:1,family:3 # Specific actions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCarryover(flags, newRepository(flags), outcomeFilter, only, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&outcomeFilter, "outcome", "", "carry only this outcome (work|health|family)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "carry only these actions, as outcome:index pairs")
	parent.AddCommand(cmd)
}

func runCarryover(flags *GlobalFlags, repo *storage.Repository, outcomeFilter string, only []string, w io.Writer) error {
	var outcomeOnly domain.OutcomeType
	if outcomeFilter != "" {
		t, err := parseOutcomeArg(outcomeFilter)
		if err != nil {
			return err
		}
		outcomeOnly = t
	}
	selection, err := parseCarrySelection(only)
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

	prev, prevDate, err := repo.Goals().Yesterday(date)
	if err != nil {
		if isNotFoundErr(err) {
			if flags.Output == OutputJSON {
				return printJSON(w, map[string]int{"carried": 0})
			}
			_, _ = fmt.Fprintln(w, "Nothing to carry over")
			return nil
		}
		return err
	}

	mask := buildCarryMask(prev, outcomeFilter != "", outcomeOnly, selection)
	carried := repo.Engine().CarryOver(prev, session.Goals, mask)
	if carried == 0 {
		if flags.Output == OutputJSON {
			return printJSON(w, map[string]int{"carried": 0})
		}
		_, _ = fmt.Fprintf(w, "Nothing unfinished on %s\n", prevDate)
		return nil
	}

	repo.Engine().Reconcile(session.Meta, session.Goals)
	repo.MarkDirty(storage.ComponentGoals, storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, map[string]any{"carried": carried, "from": prevDate.String(), "goals": session.Goals})
	}
	_, _ = fmt.Fprintf(w, "Carried %d action(s) from %s\n", carried, prevDate)
	return nil
}

// carryPick names one previous-day action by outcome and zero-based slot.
type carryPick struct {
	outcome domain.OutcomeType
	index   int
}

// parseCarrySelection parses --only pairs of the form outcome:index, with
// indices 1-based as everywhere else on the command line.
func parseCarrySelection(only []string) ([]carryPick, error) {
	if len(only) == 0 {
		return nil, nil
	}
	picks := make([]carryPick, 0, len(only))
	for _, pair := range only {
		outcomePart, indexPart, found := strings.Cut(pair, ":")
		if !found {
			return nil, errors.NewExitCode2Error(
				errors.Wrapf(errors.ErrInvalidArgument, "%q is not outcome:index", pair))
		}
		t, err := parseOutcomeArg(outcomePart)
		if err != nil {
			return nil, err
		}
		idx, err := parseIndexArg(indexPart, constants.MaxActionsPerOutcome)
		if err != nil {
			return nil, err
		}
		picks = append(picks, carryPick{outcome: t, index: idx})
	}
	return picks, nil
}

// buildCarryMask combines the --outcome and --only filters into one
// selection mask over the previous day's actions. Both empty means nil,
// which carries everything incomplete.
func buildCarryMask(prev *domain.DailyGoals, byOutcome bool, outcome domain.OutcomeType, picks []carryPick) reconcile.CarryMask {
	if !byOutcome && len(picks) == 0 {
		return nil
	}

	selected := make(map[*domain.Action]bool, len(picks))
	for _, p := range picks {
		src := prev.Outcome(p.outcome)
		if src == nil || p.index >= len(src.Actions) {
			continue
		}
		selected[&src.Actions[p.index]] = true
	}

	return func(t domain.OutcomeType, a *domain.Action) bool {
		if byOutcome && t != outcome {
			return false
		}
		if len(picks) > 0 && !selected[a] {
			return false
		}
		return true
	}
}

// isNotFoundErr reports whether err carries the not-found sentinel.
func isNotFoundErr(err error) bool {
	return stderrors.Is(err, errors.ErrNotFound)
}
