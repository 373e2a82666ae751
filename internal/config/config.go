// Package config resolves where FocusFive keeps its data on disk.
//
// Resolution order for the goals directory:
//
//  1. explicit override (the --goals-dir flag),
//  2. the FOCUSFIVE_HOME environment variable, goals under it,
//  3. <home>/FocusFive/goals (macOS: ~/Library/Application
//     Support/FocusFive/goals),
//  4. ./FocusFive/goals when the home directory cannot be determined.
//
// The data root is the parent of the goals directory and holds the
// structured sidecars: meta/, reviews/, logs/, and the top-level JSON files.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mrz1836/focusfive/internal/constants"
)

// Config carries the resolved filesystem layout.
type Config struct {
	// GoalsDir holds the daily Markdown files (YYYY-MM-DD.md).
	GoalsDir string

	// DataRoot is the parent of GoalsDir.
	DataRoot string
}

// Options are explicit overrides, typically from CLI flags. Empty fields
// fall through to environment and platform defaults.
type Options struct {
	// DataRoot overrides the data root; goals land in <DataRoot>/goals.
	DataRoot string

	// GoalsDir overrides the goals directory directly and wins over
	// DataRoot.
	GoalsDir string
}

// New resolves the filesystem layout from overrides, environment, and
// platform defaults. It never touches the filesystem; directories are
// created lazily on first write.
func New(opts Options) *Config {
	if opts.GoalsDir != "" {
		return fromGoalsDir(opts.GoalsDir)
	}
	if opts.DataRoot != "" {
		return fromDataRoot(opts.DataRoot)
	}
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return fromDataRoot(home)
	}
	return fromDataRoot(defaultDataRoot())
}

func fromGoalsDir(goalsDir string) *Config {
	return &Config{
		GoalsDir: goalsDir,
		DataRoot: filepath.Dir(goalsDir),
	}
}

func fromDataRoot(root string) *Config {
	return &Config{
		GoalsDir: filepath.Join(root, constants.GoalsDir),
		DataRoot: root,
	}
}

// defaultDataRoot picks the platform data root, falling back to a relative
// directory when no home directory is available.
func defaultDataRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return constants.AppDirName
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", constants.AppDirName)
	}
	return filepath.Join(home, constants.AppDirName)
}

// MetaDir holds the per-day JSON sidecars.
func (c *Config) MetaDir() string {
	return filepath.Join(c.DataRoot, constants.MetaDir)
}

// ReviewsDir holds saved weekly and monthly reviews.
func (c *Config) ReviewsDir() string {
	return filepath.Join(c.DataRoot, constants.ReviewsDir)
}

// LogsDir holds the rotating application log.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataRoot, constants.LogsDir)
}

// LogFilePath is the rotating log file location.
func (c *Config) LogFilePath() string {
	return filepath.Join(c.LogsDir(), constants.CLILogFileName)
}

// GoalsFilePath is the Markdown file for one date.
func (c *Config) GoalsFilePath(date string) string {
	return filepath.Join(c.GoalsDir, date+".md")
}

// MetaFilePath is the day-meta sidecar for one date.
func (c *Config) MetaFilePath(date string) string {
	return filepath.Join(c.MetaDir(), date+".meta.json")
}

// ReviewFilePath is the saved review for one period id, e.g. "2025-W03".
func (c *Config) ReviewFilePath(periodID string) string {
	return filepath.Join(c.ReviewsDir(), periodID+".json")
}

// VisionFilePath is the five-year vision document.
func (c *Config) VisionFilePath() string {
	return filepath.Join(c.DataRoot, constants.VisionFileName)
}

// TemplatesFilePath is the named action templates document.
func (c *Config) TemplatesFilePath() string {
	return filepath.Join(c.DataRoot, constants.TemplatesFileName)
}

// ObjectivesFilePath is the objectives document.
func (c *Config) ObjectivesFilePath() string {
	return filepath.Join(c.DataRoot, constants.ObjectivesFileName)
}

// IndicatorsFilePath is the indicators document.
func (c *Config) IndicatorsFilePath() string {
	return filepath.Join(c.DataRoot, constants.IndicatorsFileName)
}

// ObservationsFilePath is the append-only observation log.
func (c *Config) ObservationsFilePath() string {
	return filepath.Join(c.DataRoot, constants.ObservationsFileName)
}
