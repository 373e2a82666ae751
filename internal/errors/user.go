package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Files and parsing
	// ===================
	{
		err: ErrNoDateHeader,
		info: ErrorInfo{
			Message: "The goals file has no recognizable date header.",
			Action:  "Add a header like '# January 15, 2025' to the top of the file.",
		},
	},
	{
		err: ErrInvalidDate,
		info: ErrorInfo{
			Message: "The goals file's date header names an impossible date.",
			Action:  "Check the day against the month (e.g. February has no 30th).",
		},
	},
	{
		err: ErrInvalidMonth,
		info: ErrorInfo{
			Message: "The goals file's date header names an unknown month.",
			Action:  "Use a full English month name or its 3-letter abbreviation.",
		},
	},
	{
		err: ErrEncodingInvalid,
		info: ErrorInfo{
			Message: "The file is not valid UTF-8 text.",
			Action:  "Re-save the file with UTF-8 encoding.",
		},
	},
	{
		err: ErrCorruptObservation,
		info: ErrorInfo{
			Message: "The observations log contains a line that is not valid JSON.",
			Action:  "Open observations.ndjson and remove or fix the broken line.",
		},
	},
	{
		err: ErrPathRejected,
		info: ErrorInfo{
			Message: "The target path failed validation and was not written.",
			Action:  "Check the data directory setting for unusual characters or '..' segments.",
		},
	},

	// ===================
	// Model invariants
	// ===================
	{
		err: ErrTooManyActions,
		info: ErrorInfo{
			Message: "Each outcome holds at most 5 actions.",
			Action:  "Complete or remove an existing action before adding another.",
		},
	},
	{
		err: ErrLastAction,
		info: ErrorInfo{
			Message: "Each outcome needs at least 1 action.",
			Action:  "Edit the remaining action instead of removing it.",
		},
	},
	{
		err: ErrUnknownOutcome,
		info: ErrorInfo{
			Message: "Outcomes are fixed: work, health, family.",
			Action:  "Use one of: work, health, family.",
		},
	},
	{
		err: ErrTemplateNotFound,
		info: ErrorInfo{
			Message: "No template with that name exists.",
			Action:  "Run 'focusfive template list' to see available templates.",
		},
	},
	{
		err: ErrNotFound,
		info: ErrorInfo{
			Message: "The referenced record was not found.",
			Action:  "It may have been removed; list the records to check current ids.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
