package domain

import (
	"time"

	"github.com/mrz1836/focusfive/internal/constants"
)

// ActionMeta is the structured sidecar record for one action. It is aligned
// positionally with the corresponding Outcome's action list and references
// the action by id; it never owns the action's text.
type ActionMeta struct {
	// ID matches the Action's id at the same position.
	ID string `json:"id"`

	// Status is the action's full five-state status. Markdown only stores
	// completion, so this field is the authority for the richer states.
	Status ActionStatus `json:"status"`

	// Origin records how the action came to exist.
	Origin ActionOrigin `json:"origin"`

	// EstimatedMin is the optional estimated effort in minutes.
	EstimatedMin *int `json:"estimated_min,omitempty"`

	// ActualMin is the optional actual effort in minutes.
	ActualMin *int `json:"actual_min,omitempty"`

	// Priority is an optional ordering hint (lower sorts first).
	Priority *int `json:"priority,omitempty"`

	// Tags holds optional free-form labels.
	Tags []string `json:"tags,omitempty"`

	// ObjectiveID optionally links the action to an objective.
	ObjectiveID string `json:"objective_id,omitempty"`
}

// MetaForAction builds a fresh ActionMeta mirroring an action's current
// state: Done when the action is completed, Planned otherwise.
func MetaForAction(a *Action) ActionMeta {
	status := ActionPlanned
	if a.Completed {
		status = ActionDone
	}
	origin := a.Origin
	if origin == "" {
		origin = OriginManual
	}
	return ActionMeta{
		ID:          a.ID,
		Status:      status,
		Origin:      origin,
		ObjectiveID: a.ObjectiveID,
	}
}

// DayMeta is the per-date JSON sidecar carrying structured metadata for a
// day's actions. The three lists align positionally with the corresponding
// outcomes of that day's DailyGoals; reconciliation restores the alignment
// after the Markdown has been edited by hand.
//
// Post-reconciliation invariant: for every outcome, the meta list has the
// same length as the outcome's action list and matching ids at every index.
type DayMeta struct {
	// Version is the sidecar schema version.
	Version int `json:"version"`

	// Work aligns with the work outcome's actions.
	Work []ActionMeta `json:"work"`

	// Health aligns with the health outcome's actions.
	Health []ActionMeta `json:"health"`

	// Family aligns with the family outcome's actions.
	Family []ActionMeta `json:"family"`

	// Reflections carries per-outcome evening reflections. Reflections do
	// not appear in the Markdown file; the sidecar is their only home.
	Reflections map[OutcomeType]string `json:"reflections,omitempty"`

	// Created is when the sidecar was first written (UTC).
	Created time.Time `json:"created"`

	// Modified is when the sidecar was last reconciled or edited (UTC).
	Modified time.Time `json:"modified"`
}

// NewDayMeta synthesizes a sidecar aligned with the given goals: one
// ActionMeta per action, ids inherited, statuses derived from completion.
func NewDayMeta(goals *DailyGoals, now time.Time) *DayMeta {
	meta := &DayMeta{
		Version:  constants.DayMetaSchemaVersion,
		Created:  now,
		Modified: now,
	}
	for _, o := range goals.Outcomes() {
		list := make([]ActionMeta, len(o.Actions))
		for i := range o.Actions {
			list[i] = MetaForAction(&o.Actions[i])
		}
		*meta.list(o.OutcomeType) = list
		if o.Reflection != "" {
			meta.SetReflection(o.OutcomeType, o.Reflection)
		}
	}
	return meta
}

// Reflection returns the stored reflection for an outcome, or "".
func (m *DayMeta) Reflection(t OutcomeType) string {
	return m.Reflections[t]
}

// SetReflection stores a reflection for an outcome. An empty text removes
// the entry.
func (m *DayMeta) SetReflection(t OutcomeType, text string) {
	if text == "" {
		delete(m.Reflections, t)
		return
	}
	if m.Reflections == nil {
		m.Reflections = make(map[OutcomeType]string)
	}
	m.Reflections[t] = text
}

// List returns the meta list for the given outcome type.
func (m *DayMeta) List(t OutcomeType) []ActionMeta {
	return *m.list(t)
}

// SetList replaces the meta list for the given outcome type.
func (m *DayMeta) SetList(t OutcomeType, list []ActionMeta) {
	*m.list(t) = list
}

// list returns a pointer to the backing slice for an outcome type.
// The outcome set is closed; unknown types map to Work to keep the
// accessor total.
func (m *DayMeta) list(t OutcomeType) *[]ActionMeta {
	switch t {
	case OutcomeHealth:
		return &m.Health
	case OutcomeFamily:
		return &m.Family
	default:
		return &m.Work
	}
}
