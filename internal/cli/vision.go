package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddVisionCommand adds the vision command group to the root command.
func AddVisionCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "vision",
		Short: "Show or set the five-year vision",
		Long: `The five-year vision is one paragraph per outcome describing where you
want each life area to be. It anchors objectives and daily actions.

Examples:
  focusfive vision show
  focusfive vision set work "Build a company that outlasts me"`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the vision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVisionShow(flags, newRepository(flags), os.Stdout)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <outcome> <text>",
		Short: "Set the vision for one outcome",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisionSet(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	})
	parent.AddCommand(cmd)
}

func runVisionShow(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	vision, err := repo.Vision()
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, vision)
	}

	empty := true
	for _, t := range domain.OutcomeTypes() {
		text := vision.Vision(t)
		if text == "" {
			continue
		}
		empty = false
		_, _ = fmt.Fprintf(w, "%s:\n  %s\n", t.Display(), text)
	}
	if empty {
		_, _ = fmt.Fprintln(w, "No vision set. Try: focusfive vision set work \"...\"")
	}
	return nil
}

func runVisionSet(flags *GlobalFlags, repo *storage.Repository, outcomeArg, text string, w io.Writer) error {
	outcome, err := parseOutcomeArg(outcomeArg)
	if err != nil {
		return err
	}

	vision, err := repo.Vision()
	if err != nil {
		return err
	}

	if truncated := vision.SetVision(outcome, text); truncated {
		logger := GetLogger()
		logger.Warn().Int("limit", constants.MaxVisionLength).Msg("vision text truncated")
	}

	repo.MarkDirty(storage.ComponentVision)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, vision)
	}
	_, _ = fmt.Fprintf(w, "%s vision updated\n", outcome.Display())
	return nil
}
