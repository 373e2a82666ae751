package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrz1836/focusfive/internal/constants"
)

// ObservationSource re-exports how a measurement entered the log.
type ObservationSource = constants.ObservationSource

// Re-export observation source constants for convenience.
const (
	// SourceManual indicates the user entered the measurement by hand.
	SourceManual = constants.SourceManual

	// SourceAutomated indicates a tool recorded the measurement.
	SourceAutomated = constants.SourceAutomated

	// SourceImport indicates the measurement was bulk-imported.
	SourceImport = constants.SourceImport
)

// Observation is one dated numeric measurement of an indicator. Observations
// are append-only: they are written once to the log and never rewritten.
//
// Example JSON representation (one line of observations.ndjson):
//
//	{"id":"c9d1...","indicator_id":"b7c2...","when":"2025-01-15","value":90,"unit":"minutes","source":"manual","created":"2025-01-15T18:00:00Z"}
type Observation struct {
	// ID is the stable unique identifier.
	ID string `json:"id"`

	// IndicatorID names the measured indicator.
	IndicatorID string `json:"indicator_id"`

	// When is the calendar date the measurement is for.
	When Date `json:"when"`

	// Value is the measured number.
	Value float64 `json:"value"`

	// Unit is the measurement unit, copied from the indicator at write time
	// so the log stays meaningful if the indicator later changes.
	Unit Unit `json:"unit"`

	// Source records how the measurement entered the log.
	Source ObservationSource `json:"source"`

	// ActionID optionally ties the measurement to a specific action.
	ActionID string `json:"action_id,omitempty"`

	// Note is optional free-form commentary.
	Note string `json:"note,omitempty"`

	// Created is when the observation was recorded (UTC).
	Created time.Time `json:"created"`
}

// NewObservation creates a manual observation for the given indicator,
// date, and value.
func NewObservation(indicatorID string, when Date, value float64, unit Unit) Observation {
	return Observation{
		ID:          uuid.NewString(),
		IndicatorID: indicatorID,
		When:        when,
		Value:       value,
		Unit:        unit,
		Source:      SourceManual,
		Created:     time.Now().UTC(),
	}
}
