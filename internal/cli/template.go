package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// AddTemplateCommand adds the template command group to the root command.
func AddTemplateCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable action templates",
		Long: `Manage named lists of actions that can be applied to an outcome in one
step, e.g. a "morning" template for recurring health actions.

Examples:
  focusfive template list
  focusfive template add morning "meditate" "stretch" "journal"
  focusfive template apply morning health
  focusfive template rm morning
  focusfive template import rituals.yaml`,
	}

	cmd.AddCommand(newTemplateListCmd(flags))
	cmd.AddCommand(newTemplateAddCmd(flags))
	cmd.AddCommand(newTemplateRmCmd(flags))
	cmd.AddCommand(newTemplateApplyCmd(flags))
	cmd.AddCommand(newTemplateImportCmd(flags))
	parent.AddCommand(cmd)
}

func newTemplateListCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplateList(flags, newRepository(flags), os.Stdout)
		},
	}
}

func runTemplateList(flags *GlobalFlags, repo *storage.Repository, w io.Writer) error {
	templates, err := repo.Templates()
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, templates)
	}

	names := templates.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No templates defined")
		return nil
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"Name", "Actions"})
	for _, name := range names {
		actions, _ := templates.Get(name)
		tw.AppendRow(table.Row{name, strings.Join(actions, "; ")})
	}
	tw.Render()
	return nil
}

func newTemplateAddCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <action>...",
		Short: "Create or replace a template",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateAdd(flags, newRepository(flags), args[0], args[1:], os.Stdout)
		},
	}
}

func runTemplateAdd(flags *GlobalFlags, repo *storage.Repository, name string, actions []string, w io.Writer) error {
	templates, err := repo.Templates()
	if err != nil {
		return err
	}

	truncated, err := templates.Add(name, actions)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	if truncated {
		logger := GetLogger()
		logger.Warn().Str("template", name).Msg("template entries truncated")
	}

	repo.MarkDirty(storage.ComponentTemplates)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, templates)
	}
	saved, _ := templates.Get(name)
	_, _ = fmt.Fprintf(w, "Template %q saved with %d action(s)\n", name, len(saved))
	return nil
}

func newTemplateRmCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateRm(flags, newRepository(flags), args[0], os.Stdout)
		},
	}
}

func runTemplateRm(flags *GlobalFlags, repo *storage.Repository, name string, w io.Writer) error {
	templates, err := repo.Templates()
	if err != nil {
		return err
	}

	if !templates.Remove(name) {
		return errors.NewExitCode2Error(errors.Wrapf(errors.ErrTemplateNotFound, "%q", name))
	}

	repo.MarkDirty(storage.ComponentTemplates)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, templates)
	}
	_, _ = fmt.Fprintf(w, "Template %q removed\n", name)
	return nil
}

func newTemplateApplyCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name> <outcome>",
		Short: "Fill an outcome's actions from a template",
		Long: `Fill the selected day's outcome from a template. Entry N lands in
action slot N; slots that already hold text keep it, and the slot list
grows to the template length up to the cap of five.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateApply(flags, newRepository(flags), args[0], args[1], os.Stdout)
		},
	}
}

func runTemplateApply(flags *GlobalFlags, repo *storage.Repository, name, outcomeArg string, w io.Writer) error {
	outcome, err := parseOutcomeArg(outcomeArg)
	if err != nil {
		return err
	}

	templates, err := repo.Templates()
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

	placed, err := repo.Engine().ApplyTemplate(templates, name, session.Goals.Outcome(outcome))
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	repo.Engine().Reconcile(session.Meta, session.Goals)
	repo.MarkDirty(storage.ComponentGoals, storage.ComponentMeta)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, session.Goals)
	}
	_, _ = fmt.Fprintf(w, "Applied %q to %s: %d action(s) placed\n", name, outcome.Display(), placed)
	return nil
}

func newTemplateImportCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import templates from a YAML file",
		Long: `Import templates from a YAML mapping of name to action list:

  morning:
    - meditate
    - stretch
  shutdown:
    - plan tomorrow

Imported templates replace same-named existing ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateImport(flags, newRepository(flags), args[0], os.Stdout)
		},
	}
}

func runTemplateImport(flags *GlobalFlags, repo *storage.Repository, path string, w io.Writer) error {
	data, err := os.ReadFile(path) //#nosec G304 -- user-supplied import file
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	var imported map[string][]string
	if err := yaml.Unmarshal(data, &imported); err != nil {
		return errors.NewExitCode2Error(errors.Wrapf(err, "parse %s", path))
	}

	templates, err := repo.Templates()
	if err != nil {
		return err
	}

	count := 0
	for name, actions := range imported {
		if _, err := templates.Add(name, actions); err != nil {
			logger := GetLogger()
			logger.Warn().Err(err).Str("template", name).Msg("skipping template")
			continue
		}
		count++
	}

	repo.MarkDirty(storage.ComponentTemplates)
	if err := saveRepository(repo); err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return printJSON(w, templates)
	}
	_, _ = fmt.Fprintf(w, "Imported %d template(s) from %s\n", count, path)
	return nil
}
