// Package cli provides the command-line interface for FocusFive.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the focusfive CLI.
// This function-based approach avoids package-level globals, making the
// code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "focusfive",
		Short: "FocusFive - daily goal tracker",
		Long: `FocusFive tracks three daily outcomes (Work, Health, Family) with up to
five actions each, stored as plain Markdown you can edit with any tool.

Daily files live under <data-root>/goals as YYYY-MM-DD.md; structured
state (status, streaks, objectives, indicators) lives in JSON sidecars
that reconcile automatically with your edits.

Examples:
  focusfive today                    # Show today's goals and completion
  focusfive add work "Call investors"
  focusfive check work 1             # Cycle the first work action's status
  focusfive carryover                # Pull yesterday's unfinished actions
  focusfive streak                   # Consecutive days with a completion`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands, ensuring PersistentPreRunE runs for flag validation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			cfg := config.New(config.Options{DataRoot: flags.DataRoot, GoalsDir: flags.GoalsDir})
			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet, cfg)
			globalLoggerMu.Unlock()

			return nil
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTodayCommand(cmd, flags)
	AddAddCommand(cmd, flags)
	AddEditCommand(cmd, flags)
	AddCheckCommand(cmd, flags)
	AddRemoveCommand(cmd, flags)
	AddGoalCommand(cmd, flags)
	AddReflectCommand(cmd, flags)
	AddCarryoverCommand(cmd, flags)
	AddTemplateCommand(cmd, flags)
	AddVisionCommand(cmd, flags)
	AddObjectiveCommand(cmd, flags)
	AddIndicatorCommand(cmd, flags)
	AddObserveCommand(cmd, flags)
	AddObservationsCommand(cmd, flags)
	AddStreakCommand(cmd, flags)
	AddStatusCommand(cmd, flags)
	AddReviewCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
