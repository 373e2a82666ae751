package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/errors"
)

// Kind and direction aliases re-exported from the constants package.
type (
	// IndicatorKind distinguishes forward-looking from trailing measurements.
	IndicatorKind = constants.IndicatorKind

	// IndicatorDirection states which way an indicator's value should move.
	IndicatorDirection = constants.IndicatorDirection
)

// Re-export indicator kind and direction constants for convenience.
const (
	// IndicatorLeading marks an input metric the user controls directly.
	IndicatorLeading = constants.IndicatorLeading

	// IndicatorLagging marks an outcome metric observed after the fact.
	IndicatorLagging = constants.IndicatorLagging

	// HigherIsBetter means larger observed values are better.
	HigherIsBetter = constants.HigherIsBetter

	// LowerIsBetter means smaller observed values are better.
	LowerIsBetter = constants.LowerIsBetter

	// WithinRange means values should stay near the target.
	WithinRange = constants.WithinRange
)

// Unit is the measurement unit of an indicator. The built-in units are
// "count", "minutes", "dollars", and "percent"; any other label is carried
// as "custom:<label>".
type Unit string

// Built-in unit constants.
const (
	// UnitCount counts discrete occurrences.
	UnitCount Unit = "count"

	// UnitMinutes measures durations in minutes.
	UnitMinutes Unit = "minutes"

	// UnitDollars measures money in dollars.
	UnitDollars Unit = "dollars"

	// UnitPercent measures proportions from 0 to 100.
	UnitPercent Unit = "percent"
)

// customUnitPrefix tags user-defined unit labels in serialized form.
const customUnitPrefix = "custom:"

// CustomUnit builds a unit with a user-defined label.
func CustomUnit(label string) Unit {
	return Unit(customUnitPrefix + label)
}

// ParseUnit resolves a user-supplied unit name: built-in names map to their
// constants, anything else becomes a custom unit with that label.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(UnitCount):
		return UnitCount
	case string(UnitMinutes):
		return UnitMinutes
	case string(UnitDollars):
		return UnitDollars
	case string(UnitPercent):
		return UnitPercent
	case "":
		return UnitCount
	default:
		return CustomUnit(strings.TrimSpace(s))
	}
}

// IsCustom reports whether the unit carries a user-defined label.
func (u Unit) IsCustom() bool {
	return strings.HasPrefix(string(u), customUnitPrefix)
}

// Label returns the display label: the custom label if present, otherwise
// the built-in unit name.
func (u Unit) Label() string {
	if u.IsCustom() {
		return strings.TrimPrefix(string(u), customUnitPrefix)
	}
	return string(u)
}

// Indicator is a named measurable attached to an objective.
//
// Example JSON representation:
//
//	{
//	    "id": "b7c2...",
//	    "name": "Deep work hours",
//	    "kind": "leading",
//	    "unit": "minutes",
//	    "objective_id": "a3f6...",
//	    "target": 120,
//	    "direction": "higher_is_better",
//	    "active": true,
//	    "created": "2025-01-01T09:00:00Z",
//	    "modified": "2025-01-15T10:00:00Z"
//	}
type Indicator struct {
	// ID is the stable unique identifier.
	ID string `json:"id"`

	// Name is the required display name.
	Name string `json:"name"`

	// Kind distinguishes leading from lagging indicators.
	Kind IndicatorKind `json:"kind"`

	// Unit is the measurement unit.
	Unit Unit `json:"unit"`

	// ObjectiveID optionally links the indicator to an objective.
	ObjectiveID string `json:"objective_id,omitempty"`

	// Target is the optional target value.
	Target *float64 `json:"target,omitempty"`

	// Direction states which way the value should move.
	Direction IndicatorDirection `json:"direction"`

	// Active marks whether the indicator is currently tracked.
	Active bool `json:"active"`

	// Created is when the indicator was created (UTC).
	Created time.Time `json:"created"`

	// Modified is when the indicator was last mutated (UTC).
	Modified time.Time `json:"modified"`

	// LineageOf optionally names the predecessor indicator this one
	// replaced, preserving measurement history across renames.
	LineageOf string `json:"lineage_of,omitempty"`

	// Notes is optional free-form commentary.
	Notes string `json:"notes,omitempty"`
}

// NewIndicator creates an active leading indicator with the given name and
// unit. Returns ErrIndicatorNameEmpty for a blank name.
func NewIndicator(name string, unit Unit) (*Indicator, error) {
	if name == "" {
		return nil, errors.ErrIndicatorNameEmpty
	}
	now := time.Now().UTC()
	return &Indicator{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      IndicatorLeading,
		Unit:      unit,
		Direction: HigherIsBetter,
		Active:    true,
		Created:   now,
		Modified:  now,
	}, nil
}

// IndicatorsData is the versioned indicators document.
type IndicatorsData struct {
	// Version is the schema version of this document.
	Version int `json:"version"`

	// Indicators holds all indicator definitions as a flat list.
	Indicators []Indicator `json:"indicators"`
}

// NewIndicatorsData creates an empty indicators document.
func NewIndicatorsData() *IndicatorsData {
	return &IndicatorsData{Version: constants.IndicatorsSchemaVersion}
}

// Find returns the indicator with the given id, or ErrNotFound.
func (d *IndicatorsData) Find(id string) (*Indicator, error) {
	for i := range d.Indicators {
		if d.Indicators[i].ID == id {
			return &d.Indicators[i], nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "indicator %s", id)
}

// Add appends an indicator to the document.
func (d *IndicatorsData) Add(ind Indicator) {
	d.Indicators = append(d.Indicators, ind)
}
