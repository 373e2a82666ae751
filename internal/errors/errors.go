// Package errors provides centralized error handling for FocusFive.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrPathRejected indicates a target path failed validation before any
	// I/O was attempted (null byte, control character, traversal segment,
	// or excessive length).
	ErrPathRejected = errors.New("path rejected")

	// ErrEncodingInvalid indicates file contents were not valid UTF-8.
	ErrEncodingInvalid = errors.New("invalid utf-8 encoding")

	// ErrEmptyDocument indicates a goals file contained no content at all.
	ErrEmptyDocument = errors.New("empty document")

	// ErrNoDateHeader indicates no valid date header was found in the first
	// ten lines of a goals file.
	ErrNoDateHeader = errors.New("no valid date header")

	// ErrInvalidMonth indicates a date header named an unrecognized month.
	ErrInvalidMonth = errors.New("invalid month name")

	// ErrInvalidDate indicates a date header named an impossible calendar
	// date (e.g. February 30).
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrParseFailed indicates a document (Markdown or JSON) could not be
	// parsed into its model.
	ErrParseFailed = errors.New("parse failed")

	// ErrCorruptObservation indicates a line of the observations log could
	// not be decoded.
	ErrCorruptObservation = errors.New("corrupt observation line")

	// ErrTooManyActions indicates an attempt to grow an outcome past the
	// five-action cap.
	ErrTooManyActions = errors.New("maximum 5 actions per outcome")

	// ErrLastAction indicates an attempt to remove an outcome's only action.
	ErrLastAction = errors.New("minimum 1 action required per outcome")

	// ErrActionIndex indicates an action index outside the outcome's range.
	ErrActionIndex = errors.New("invalid action index")

	// ErrUnknownOutcome indicates a name that is not work, health, or family.
	ErrUnknownOutcome = errors.New("unknown outcome")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrNotFound indicates a referenced objective, indicator, or template
	// id does not resolve. Surfaced as a render hint, never a fatal save
	// error.
	ErrNotFound = errors.New("not found")

	// ErrTemplateNotFound indicates the named action template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateEmpty indicates a template with no action texts.
	ErrTemplateEmpty = errors.New("template has no actions")

	// ErrObjectiveTitleEmpty indicates an objective without a title.
	ErrObjectiveTitleEmpty = errors.New("objective title is required")

	// ErrIndicatorNameEmpty indicates an indicator without a name.
	ErrIndicatorNameEmpty = errors.New("indicator name is required")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
