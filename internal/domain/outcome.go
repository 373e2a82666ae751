package domain

import (
	"strings"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/errors"
)

// OutcomeType names one of the three fixed life areas.
// The set is closed: Work, Health, Family, always in that order.
type OutcomeType string

// Outcome type constants.
const (
	// OutcomeWork is the work life area.
	OutcomeWork OutcomeType = "work"

	// OutcomeHealth is the health life area.
	OutcomeHealth OutcomeType = "health"

	// OutcomeFamily is the family life area.
	OutcomeFamily OutcomeType = "family"
)

// OutcomeTypes returns the three outcome types in their fixed display order.
func OutcomeTypes() [3]OutcomeType {
	return [3]OutcomeType{OutcomeWork, OutcomeHealth, OutcomeFamily}
}

// ParseOutcomeType resolves a user-supplied name to an outcome type,
// case-insensitively. Returns ErrUnknownOutcome for anything else.
func ParseOutcomeType(name string) (OutcomeType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "work":
		return OutcomeWork, nil
	case "health":
		return OutcomeHealth, nil
	case "family":
		return OutcomeFamily, nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownOutcome, "%q", name)
	}
}

// String returns the lowercase name of the outcome type.
func (t OutcomeType) String() string {
	return string(t)
}

// Display returns the capitalized name used in Markdown headers.
func (t OutcomeType) Display() string {
	switch t {
	case OutcomeWork:
		return "Work"
	case OutcomeHealth:
		return "Health"
	case OutcomeFamily:
		return "Family"
	default:
		return string(t)
	}
}

// Outcome is one life area within a day: an optional goal line, an ordered
// list of 1-5 actions, and an optional evening reflection.
//
// Action order is stable and user-visible; the display index is the position.
type Outcome struct {
	// OutcomeType identifies which of the three areas this is.
	OutcomeType OutcomeType `json:"outcome_type"`

	// Goal is the optional goal line, at most 100 codepoints.
	Goal string `json:"goal,omitempty"`

	// Actions holds between 1 and 5 actions in display order.
	Actions []Action `json:"actions"`

	// Reflection is the optional evening note, at most 500 codepoints.
	Reflection string `json:"reflection,omitempty"`
}

// NewOutcome creates an outcome with the default three empty action slots.
func NewOutcome(t OutcomeType) Outcome {
	actions := make([]Action, constants.DefaultActionsPerOutcome)
	for i := range actions {
		actions[i] = NewEmptyAction()
	}
	return Outcome{
		OutcomeType: t,
		Actions:     actions,
	}
}

// AddAction appends a blank action slot.
// Returns ErrTooManyActions if the outcome already holds five.
func (o *Outcome) AddAction() error {
	if len(o.Actions) >= constants.MaxActionsPerOutcome {
		return errors.Wrapf(errors.ErrTooManyActions, "%s", o.OutcomeType)
	}
	o.Actions = append(o.Actions, NewEmptyAction())
	return nil
}

// RemoveAction removes the action at index, shifting later actions left.
// Returns ErrLastAction when only one action remains, ErrActionIndex for an
// out-of-range index. The caller must reconcile the day's sidecar afterwards.
func (o *Outcome) RemoveAction(index int) error {
	if len(o.Actions) <= constants.MinActionsPerOutcome {
		return errors.Wrapf(errors.ErrLastAction, "%s", o.OutcomeType)
	}
	if index < 0 || index >= len(o.Actions) {
		return errors.Wrapf(errors.ErrActionIndex, "%d of %d", index, len(o.Actions))
	}
	o.Actions = append(o.Actions[:index], o.Actions[index+1:]...)
	return nil
}

// SetGoal replaces the goal line, clamping to 100 codepoints.
// truncated reports whether clamping occurred.
func (o *Outcome) SetGoal(goal string) (truncated bool) {
	o.Goal, truncated = ClampLength(goal, constants.MaxGoalLength)
	return truncated
}

// SetReflection replaces the reflection, clamping to 500 codepoints.
// truncated reports whether clamping occurred.
func (o *Outcome) SetReflection(reflection string) (truncated bool) {
	o.Reflection, truncated = ClampLength(reflection, constants.MaxReflectionLength)
	return truncated
}

// CountCompleted returns the number of completed actions.
func (o *Outcome) CountCompleted() int {
	n := 0
	for i := range o.Actions {
		if o.Actions[i].Completed {
			n++
		}
	}
	return n
}

// CompletionPercentage returns done*100/total using integer division,
// or 0 for an empty action list.
func (o *Outcome) CompletionPercentage() int {
	if len(o.Actions) == 0 {
		return 0
	}
	return o.CountCompleted() * 100 / len(o.Actions)
}
