package constants

// ActionStatus represents the state of an action in its five-state cycle.
// Status values use snake_case for JSON serialization compatibility.
type ActionStatus string

// Action status constants define the valid states an action can be in.
// Cycling advances through the loop:
//
//	Planned → InProgress → Done → Skipped → Blocked → Planned
const (
	// ActionPlanned indicates the action has been written down but not started.
	ActionPlanned ActionStatus = "planned"

	// ActionInProgress indicates the action is actively being worked on.
	ActionInProgress ActionStatus = "in_progress"

	// ActionDone indicates the action is complete. This is the only status
	// for which an action's completed flag is true.
	ActionDone ActionStatus = "done"

	// ActionSkipped indicates the action was deliberately not done today.
	ActionSkipped ActionStatus = "skipped"

	// ActionBlocked indicates the action is waiting on something external.
	ActionBlocked ActionStatus = "blocked"
)

// String returns the string representation of the ActionStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s ActionStatus) String() string {
	return string(s)
}

// Next returns the status that follows s in the cycle.
// Unknown statuses reset to ActionPlanned.
func (s ActionStatus) Next() ActionStatus {
	switch s {
	case ActionPlanned:
		return ActionInProgress
	case ActionInProgress:
		return ActionDone
	case ActionDone:
		return ActionSkipped
	case ActionSkipped:
		return ActionBlocked
	case ActionBlocked:
		return ActionPlanned
	default:
		return ActionPlanned
	}
}

// ActionOrigin records how an action came to exist on a given day.
type ActionOrigin string

// Action origin constants.
const (
	// OriginManual indicates the user typed the action in directly.
	OriginManual ActionOrigin = "manual"

	// OriginTemplate indicates the action was filled in from a named template.
	OriginTemplate ActionOrigin = "template"

	// OriginCarryOver indicates the action was copied from a previous day's
	// unfinished actions.
	OriginCarryOver ActionOrigin = "carry_over"
)

// String returns the string representation of the ActionOrigin.
func (o ActionOrigin) String() string {
	return string(o)
}

// ObjectiveStatus represents the lifecycle state of a long-term objective.
type ObjectiveStatus string

// Objective status constants.
const (
	// ObjectiveActive indicates the objective is being pursued.
	ObjectiveActive ObjectiveStatus = "active"

	// ObjectivePaused indicates the objective is temporarily on hold.
	ObjectivePaused ObjectiveStatus = "paused"

	// ObjectiveCompleted indicates the objective has been achieved.
	ObjectiveCompleted ObjectiveStatus = "completed"

	// ObjectiveDropped indicates the objective was abandoned.
	ObjectiveDropped ObjectiveStatus = "dropped"
)

// String returns the string representation of the ObjectiveStatus.
func (s ObjectiveStatus) String() string {
	return string(s)
}

// IndicatorKind distinguishes forward-looking from trailing measurements.
type IndicatorKind string

// Indicator kind constants.
const (
	// IndicatorLeading marks an input metric the user controls directly.
	IndicatorLeading IndicatorKind = "leading"

	// IndicatorLagging marks an outcome metric observed after the fact.
	IndicatorLagging IndicatorKind = "lagging"
)

// IndicatorDirection states which way an indicator's value should move.
type IndicatorDirection string

// Indicator direction constants.
const (
	// HigherIsBetter means larger observed values are better.
	HigherIsBetter IndicatorDirection = "higher_is_better"

	// LowerIsBetter means smaller observed values are better.
	LowerIsBetter IndicatorDirection = "lower_is_better"

	// WithinRange means values should stay near the target.
	WithinRange IndicatorDirection = "within_range"
)

// ObservationSource records how an observation entered the log.
type ObservationSource string

// Observation source constants.
const (
	// SourceManual indicates the user entered the measurement by hand.
	SourceManual ObservationSource = "manual"

	// SourceAutomated indicates a tool recorded the measurement.
	SourceAutomated ObservationSource = "automated"

	// SourceImport indicates the measurement was bulk-imported.
	SourceImport ObservationSource = "import"
)
