package constants

// Directory names under the resolved data root.
const (
	// AppDirName is the directory name where FocusFive stores all its data.
	// This directory is created in the user's home directory.
	AppDirName = "FocusFive"

	// GoalsDir is the directory name where daily Markdown goal files live.
	GoalsDir = "goals"

	// MetaDir is the directory name where per-day JSON sidecars live.
	MetaDir = "meta"

	// ReviewsDir is the directory name where weekly/monthly review documents live.
	ReviewsDir = "reviews"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// File names under the resolved data root.
const (
	// VisionFileName stores the five-year vision document.
	VisionFileName = "vision.json"

	// TemplatesFileName stores the named action templates.
	TemplatesFileName = "templates.json"

	// ObjectivesFileName stores the long-term objectives.
	ObjectivesFileName = "objectives.json"

	// IndicatorsFileName stores the indicator definitions.
	IndicatorsFileName = "indicators.json"

	// ObservationsFileName is the append-only indicator measurement log.
	ObservationsFileName = "observations.ndjson"

	// CLILogFileName is the global CLI log file for host operations.
	// This file is located in <data_root>/logs/focusfive.log.
	CLILogFileName = "focusfive.log"
)

// Environment variables honored by path resolution.
const (
	// HomeEnvVar overrides the resolved data root when set.
	HomeEnvVar = "FOCUSFIVE_HOME"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation, in megabytes.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file in days.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip-compressed.
	LogCompress = true
)
