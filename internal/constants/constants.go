// Package constants provides centralized constant values used throughout FocusFive.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Input length limits, measured in Unicode codepoints.
// Inputs longer than these limits are clamped, never silently dropped:
// every clamping mutator reports whether truncation occurred.
const (
	// MaxActionLength is the maximum length of an action's text.
	MaxActionLength = 500

	// MaxGoalLength is the maximum length of an outcome's goal line.
	MaxGoalLength = 100

	// MaxReflectionLength is the maximum length of an outcome's reflection.
	MaxReflectionLength = 500

	// MaxVisionLength is the maximum length of each five-year vision entry.
	MaxVisionLength = 1000
)

// Action count bounds per outcome.
const (
	// MinActionsPerOutcome is the minimum number of actions an outcome holds.
	// Removing the last action is refused.
	MinActionsPerOutcome = 1

	// MaxActionsPerOutcome is the hard cap on actions per outcome.
	// Parsers discard excess action lines with a warning; mutators refuse
	// to grow past this bound.
	MaxActionsPerOutcome = 5

	// DefaultActionsPerOutcome is the number of empty action slots a fresh
	// outcome is created with. Kept at 3 for compatibility with files
	// written before variable action counts existed.
	DefaultActionsPerOutcome = 3

	// MaxTemplateActions is the maximum number of action texts a template
	// may carry. Longer templates are clamped on write.
	MaxTemplateActions = 5
)

// Streak computation bounds.
const (
	// MaxStreakDays caps the backwards walk over historical goal files so a
	// pathological data directory can never produce an unbounded scan.
	MaxStreakDays = 365
)

// Atomic writer configuration.
const (
	// MaxPathLength is the maximum accepted target path length in codepoints.
	MaxPathLength = 255

	// TempSweepAge is the minimum age of an orphaned temp file before the
	// writer's best-effort sweep removes it.
	TempSweepAge = time.Hour
)

// Schema version constants for data migration support.
const (
	// DayMetaSchemaVersion is the current version of the day-meta sidecar schema.
	DayMetaSchemaVersion = 1

	// ObjectivesSchemaVersion is the current version of the objectives document schema.
	ObjectivesSchemaVersion = 1

	// IndicatorsSchemaVersion is the current version of the indicators document schema.
	IndicatorsSchemaVersion = 1

	// ReviewSchemaVersion is the current version of the review document schema.
	ReviewSchemaVersion = 1
)
