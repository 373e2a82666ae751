// Package testutil provides testing utilities for FocusFive.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockFileNotFound indicates a mock file was not found (used in tests).
	ErrMockFileNotFound = errors.New("file not found")

	// ErrMockDiskFull indicates a mock write failure (used in tests).
	ErrMockDiskFull = errors.New("disk full")

	// ErrMockStoreUnavailable indicates a mock store is unavailable (used in tests).
	ErrMockStoreUnavailable = errors.New("store unavailable")

	// ErrMockParse indicates a mock parse failure (used in tests).
	ErrMockParse = errors.New("parse failure")
)
