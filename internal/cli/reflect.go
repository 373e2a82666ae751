package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddReflectCommand adds the reflect command to the root command.
func AddReflectCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "reflect <outcome> <text>",
		Short: "Record an evening reflection for an outcome",
		Long: `Record a short reflection on how the day went for one outcome.
Reflections are part of the evening ritual and are capped at 500
characters.

Examples:
  focusfive reflect work "Shipped late but shipped"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReflect(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runReflect(flags *GlobalFlags, repo *storage.Repository, outcomeArg, text string, w io.Writer) error {
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
	if truncated := o.SetReflection(text); truncated {
		logger := GetLogger()
		logger.Warn().Int("limit", constants.MaxReflectionLength).Msg("reflection truncated")
	}
	session.Meta.SetReflection(outcome, o.Reflection)

	repo.MarkDirty(storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, session.Goals)
	}
	_, _ = fmt.Fprintf(w, "Saved %s reflection\n", outcome.Display())
	return nil
}
