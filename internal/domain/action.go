// Package domain provides shared domain types for the FocusFive daily tracker.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library,
//     github.com/google/uuid
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrz1836/focusfive/internal/constants"
)

// Status and origin aliases re-exported from the constants package.
// This allows consumers to import domain types and status types together,
// providing a unified API for working with FocusFive domain objects.
type (
	// ActionStatus represents the state of an action in the five-state cycle.
	ActionStatus = constants.ActionStatus

	// ActionOrigin records how an action came to exist on a given day.
	ActionOrigin = constants.ActionOrigin
)

// Re-export action status and origin constants for convenience.
const (
	// ActionPlanned indicates the action has been written down but not started.
	ActionPlanned = constants.ActionPlanned

	// ActionInProgress indicates the action is actively being worked on.
	ActionInProgress = constants.ActionInProgress

	// ActionDone indicates the action is complete.
	ActionDone = constants.ActionDone

	// ActionSkipped indicates the action was deliberately not done today.
	ActionSkipped = constants.ActionSkipped

	// ActionBlocked indicates the action is waiting on something external.
	ActionBlocked = constants.ActionBlocked

	// OriginManual indicates the user typed the action in directly.
	OriginManual = constants.OriginManual

	// OriginTemplate indicates the action was filled in from a named template.
	OriginTemplate = constants.OriginTemplate

	// OriginCarryOver indicates the action was copied from a previous day.
	OriginCarryOver = constants.OriginCarryOver
)

// Action is a single task under an outcome.
//
// The completed flag is derived state: it is true exactly when Status is
// ActionDone, and CompletedAt is non-nil exactly when Status is ActionDone.
// All mutation goes through the setters below, which maintain that invariant
// and stamp Modified.
//
// Example JSON representation:
//
//	{
//	    "id": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
//	    "text": "Call investors",
//	    "completed": true,
//	    "status": "done",
//	    "origin": "manual",
//	    "objective_id": "a12...",
//	    "objective_ids": ["a12...", "b34..."],
//	    "created": "2025-01-15T08:00:00Z",
//	    "modified": "2025-01-15T14:30:00Z",
//	    "completed_at": "2025-01-15T14:30:00Z"
//	}
type Action struct {
	// ID is the stable unique identifier, generated on creation, never reused.
	ID string `json:"id"`

	// Text is the free-form action description, at most 500 codepoints.
	Text string `json:"text"`

	// Completed mirrors Status == ActionDone. Kept as a stored field because
	// it is the only status information the Markdown format carries.
	Completed bool `json:"completed"`

	// Status is the current state in the five-state cycle.
	Status ActionStatus `json:"status"`

	// Origin records how the action came to exist today.
	Origin ActionOrigin `json:"origin"`

	// ObjectiveID is the legacy single-objective link. Maintained as the
	// first element of ObjectiveIDs for backward compatibility.
	ObjectiveID string `json:"objective_id,omitempty"`

	// ObjectiveIDs links the action to zero or more objectives.
	ObjectiveIDs []string `json:"objective_ids,omitempty"`

	// Created is when the action was created (UTC).
	Created time.Time `json:"created"`

	// Modified is when the action was last mutated (UTC).
	Modified time.Time `json:"modified"`

	// CompletedAt is when the action last entered ActionDone; nil whenever
	// the status is anything else.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewAction creates an action with the given text. Text longer than 500
// codepoints is clamped; truncated reports whether clamping occurred so the
// caller can surface a warning.
func NewAction(text string) (a Action, truncated bool) {
	text, truncated = ClampLength(text, constants.MaxActionLength)
	now := time.Now().UTC()
	return Action{
		ID:       uuid.NewString(),
		Text:     text,
		Status:   ActionPlanned,
		Origin:   OriginManual,
		Created:  now,
		Modified: now,
	}, truncated
}

// NewEmptyAction creates a blank planned action slot.
func NewEmptyAction() Action {
	a, _ := NewAction("")
	return a
}

// ActionFromMarkdown creates an action from a parsed Markdown line. Only text
// and completion survive the Markdown format; richer status is reconstructed
// from the sidecar afterwards.
func ActionFromMarkdown(text string, completed bool) (a Action, truncated bool) {
	a, truncated = NewAction(text)
	if completed {
		a.SetStatus(ActionDone)
	}
	return a, truncated
}

// SetText replaces the action text, clamping to 500 codepoints.
// truncated reports whether clamping occurred.
func (a *Action) SetText(text string) (truncated bool) {
	a.Text, truncated = ClampLength(text, constants.MaxActionLength)
	a.touch()
	return truncated
}

// SetStatus moves the action to the given status and re-derives the
// completion fields: Completed and CompletedAt track ActionDone exactly.
func (a *Action) SetStatus(status ActionStatus) {
	a.Status = status
	if status == ActionDone {
		a.Completed = true
		if a.CompletedAt == nil {
			done := time.Now().UTC()
			a.CompletedAt = &done
		}
	} else {
		a.Completed = false
		a.CompletedAt = nil
	}
	a.touch()
}

// CycleStatus advances the action one step around the status loop:
// Planned → InProgress → Done → Skipped → Blocked → Planned.
func (a *Action) CycleStatus() {
	a.SetStatus(a.Status.Next())
}

// AllObjectiveIDs returns the canonical objective link set: the union of the
// legacy scalar field and the list, order-preserving, without duplicates.
func (a *Action) AllObjectiveIDs() []string {
	seen := make(map[string]bool, len(a.ObjectiveIDs)+1)
	var ids []string
	if a.ObjectiveID != "" {
		seen[a.ObjectiveID] = true
		ids = append(ids, a.ObjectiveID)
	}
	for _, id := range a.ObjectiveIDs {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// LinkObjective adds an objective id to the action's link set. The legacy
// scalar field stays populated with the first linked id.
func (a *Action) LinkObjective(id string) {
	if id == "" {
		return
	}
	for _, existing := range a.AllObjectiveIDs() {
		if existing == id {
			return
		}
	}
	a.ObjectiveIDs = append(a.AllObjectiveIDs(), id)
	a.ObjectiveID = a.ObjectiveIDs[0]
	a.touch()
}

// UnlinkObjective removes an objective id from the action's link set.
// It reports whether the id was present.
func (a *Action) UnlinkObjective(id string) bool {
	all := a.AllObjectiveIDs()
	kept := all[:0]
	for _, existing := range all {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(all) {
		return false
	}
	a.ObjectiveIDs = kept
	if len(kept) > 0 {
		a.ObjectiveID = kept[0]
	} else {
		a.ObjectiveIDs = nil
		a.ObjectiveID = ""
	}
	a.touch()
	return true
}

// touch stamps the modification time.
func (a *Action) touch() {
	a.Modified = time.Now().UTC()
}

// ClampLength truncates s to at most limit codepoints.
// It reports whether truncation occurred.
func ClampLength(s string, limit int) (clamped string, truncated bool) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
