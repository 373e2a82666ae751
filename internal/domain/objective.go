package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/errors"
)

// ObjectiveStatus re-exports the objective lifecycle states.
type ObjectiveStatus = constants.ObjectiveStatus

// Re-export objective status constants for convenience.
const (
	// ObjectiveActive indicates the objective is being pursued.
	ObjectiveActive = constants.ObjectiveActive

	// ObjectivePaused indicates the objective is temporarily on hold.
	ObjectivePaused = constants.ObjectivePaused

	// ObjectiveCompleted indicates the objective has been achieved.
	ObjectiveCompleted = constants.ObjectiveCompleted

	// ObjectiveDropped indicates the objective was abandoned.
	ObjectiveDropped = constants.ObjectiveDropped
)

// Objective is a long-lived target spanning many days within one life area.
// Actions link to objectives by id; indicators measure progress against them.
// All cross-entity references are by id and tolerate missing targets.
//
// Example JSON representation:
//
//	{
//	    "id": "a3f6...",
//	    "domain": "work",
//	    "title": "Grow MRR to $50k",
//	    "description": "Increase monthly recurring revenue",
//	    "start": "2025-01-01",
//	    "end": "2025-12-31",
//	    "status": "active",
//	    "indicators": ["b7c2..."],
//	    "created": "2025-01-01T09:00:00Z",
//	    "modified": "2025-01-15T10:00:00Z"
//	}
type Objective struct {
	// ID is the stable unique identifier.
	ID string `json:"id"`

	// Domain is the life area the objective belongs to.
	Domain OutcomeType `json:"domain"`

	// Title is the short, required description.
	Title string `json:"title"`

	// Description is an optional longer explanation.
	Description string `json:"description,omitempty"`

	// Start is the date the objective begins.
	Start Date `json:"start"`

	// End is the optional target end date (nil for open-ended objectives).
	End *Date `json:"end,omitempty"`

	// Status is the current lifecycle state.
	Status ObjectiveStatus `json:"status"`

	// Indicators is the ordered list of indicator ids attached to this
	// objective.
	Indicators []string `json:"indicators,omitempty"`

	// Created is when the objective was created (UTC).
	Created time.Time `json:"created"`

	// Modified is when the objective was last mutated (UTC).
	Modified time.Time `json:"modified"`

	// ParentID optionally nests this objective under another.
	ParentID string `json:"parent_id,omitempty"`
}

// NewObjective creates an active objective starting today.
// Returns ErrObjectiveTitleEmpty for a blank title.
func NewObjective(domain OutcomeType, title string) (*Objective, error) {
	if title == "" {
		return nil, errors.ErrObjectiveTitleEmpty
	}
	now := time.Now().UTC()
	return &Objective{
		ID:       uuid.NewString(),
		Domain:   domain,
		Title:    title,
		Start:    DateOf(now),
		Status:   ObjectiveActive,
		Created:  now,
		Modified: now,
	}, nil
}

// ObjectivesData is the versioned objectives document.
type ObjectivesData struct {
	// Version is the schema version of this document.
	Version int `json:"version"`

	// Objectives holds all objectives as a flat list; the UI resolves ids
	// to records at render time.
	Objectives []Objective `json:"objectives"`
}

// NewObjectivesData creates an empty objectives document.
func NewObjectivesData() *ObjectivesData {
	return &ObjectivesData{Version: constants.ObjectivesSchemaVersion}
}

// Find returns the objective with the given id, or ErrNotFound.
func (d *ObjectivesData) Find(id string) (*Objective, error) {
	for i := range d.Objectives {
		if d.Objectives[i].ID == id {
			return &d.Objectives[i], nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "objective %s", id)
}

// Add appends an objective to the document.
func (d *ObjectivesData) Add(o Objective) {
	d.Objectives = append(d.Objectives, o)
}
