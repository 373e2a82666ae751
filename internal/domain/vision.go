package domain

import (
	"time"

	"github.com/mrz1836/focusfive/internal/constants"
)

// FiveYearVision holds the long-horizon vision statement for each life area.
// Each entry is clamped to 1000 codepoints.
//
// Example JSON representation:
//
//	{
//	    "work": "Run a profitable studio",
//	    "health": "Finish a marathon",
//	    "family": "Weekly dinners together",
//	    "created": "2025-01-01",
//	    "modified": "2025-01-15"
//	}
type FiveYearVision struct {
	// Work is the work-area vision.
	Work string `json:"work"`

	// Health is the health-area vision.
	Health string `json:"health"`

	// Family is the family-area vision.
	Family string `json:"family"`

	// Created is the date the vision document was first written.
	Created Date `json:"created"`

	// Modified is the date of the last edit.
	Modified Date `json:"modified"`
}

// NewFiveYearVision creates an empty vision stamped with today's date.
func NewFiveYearVision() *FiveYearVision {
	today := DateOf(time.Now())
	return &FiveYearVision{Created: today, Modified: today}
}

// Vision returns the vision text for the given outcome type.
func (v *FiveYearVision) Vision(t OutcomeType) string {
	switch t {
	case OutcomeWork:
		return v.Work
	case OutcomeHealth:
		return v.Health
	case OutcomeFamily:
		return v.Family
	default:
		return ""
	}
}

// SetVision replaces the vision text for the given outcome type, clamping to
// 1000 codepoints and stamping Modified. truncated reports whether clamping
// occurred.
func (v *FiveYearVision) SetVision(t OutcomeType, text string) (truncated bool) {
	text, truncated = ClampLength(text, constants.MaxVisionLength)
	switch t {
	case OutcomeWork:
		v.Work = text
	case OutcomeHealth:
		v.Health = text
	case OutcomeFamily:
		v.Family = text
	}
	v.Modified = DateOf(time.Now())
	return truncated
}
