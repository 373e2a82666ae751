package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mrz1836/focusfive/internal/clock"
	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/storage"
)

// newRepository builds the repository for the flags' resolved layout.
func newRepository(flags *GlobalFlags) *storage.Repository {
	cfg := config.New(config.Options{DataRoot: flags.DataRoot, GoalsDir: flags.GoalsDir})
	return storage.NewRepository(cfg, clock.RealClock{})
}

// resolveDate returns the day a command operates on: the --date flag when
// set, otherwise today in local time.
func resolveDate(flags *GlobalFlags, clk clock.Clock) (domain.Date, error) {
	if flags.Date == "" {
		return domain.DateOf(clk.Now()), nil
	}
	date, err := domain.ParseDate(flags.Date)
	if err != nil {
		return domain.Date{}, errors.NewExitCode2Error(err)
	}
	return date, nil
}

// parseOutcomeArg resolves an outcome name argument, mapping failure to
// exit code 2.
func parseOutcomeArg(arg string) (domain.OutcomeType, error) {
	t, err := domain.ParseOutcomeType(arg)
	if err != nil {
		return "", errors.NewExitCode2Error(err)
	}
	return t, nil
}

// parseStatusArg resolves a status name argument, mapping failure to
// exit code 2.
func parseStatusArg(arg string) (domain.ActionStatus, error) {
	for _, s := range []domain.ActionStatus{
		domain.ActionPlanned,
		domain.ActionInProgress,
		domain.ActionDone,
		domain.ActionSkipped,
		domain.ActionBlocked,
	} {
		if arg == s.String() {
			return s, nil
		}
	}
	return "", errors.NewExitCode2Error(
		errors.Wrapf(errors.ErrInvalidArgument, "unknown status %q", arg))
}

// parseIndexArg resolves a 1-based action index argument against an
// outcome's current action count.
func parseIndexArg(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, errors.NewExitCode2Error(
			errors.Wrapf(errors.ErrActionIndex, "%q is not in 1..%d", arg, count))
	}
	return n - 1, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a table writer mirroring to w.
func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	return tw
}

// saveRepository flushes dirty stores, logging and joining any failures.
func saveRepository(repo *storage.Repository) error {
	failures := repo.SaveAll()
	if len(failures) == 0 {
		return nil
	}
	logger := GetLogger()
	msgs := make([]string, 0, len(failures))
	for _, f := range failures {
		logger.Error().Err(f.Err).Str("store", string(f.Component)).Msg("save failed")
		msgs = append(msgs, f.Error())
	}
	return fmt.Errorf("save failed: %s", strings.Join(msgs, "; "))
}

// statusGlyph renders a five-state status as a short marker for tables.
func statusGlyph(s domain.ActionStatus) string {
	switch s {
	case domain.ActionDone:
		return "[x]"
	case domain.ActionInProgress:
		return "[~]"
	case domain.ActionBlocked:
		return "[!]"
	case domain.ActionSkipped:
		return "[-]"
	default:
		return "[ ]"
	}
}

// logWarnings surfaces non-fatal parse warnings.
func logWarnings(warnings []string) {
	logger := GetLogger()
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}
}
