// Package reconcile keeps the Markdown view of a day and its structured
// sidecar in agreement.
//
// Markdown is the human-editable source of truth for text and completion;
// the sidecar owns stable ids and the five-state status. After every parse
// the two are reconciled: per-action metadata is aligned positionally with
// the parsed actions, and status is upgraded or downgraded to match the
// checkbox the user left behind.
package reconcile

import (
	"github.com/mrz1836/focusfive/internal/clock"
	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
)

// Engine reconciles parsed goals with day metadata. The clock is injected
// so reconciliation timestamps are deterministic under test.
type Engine struct {
	clock clock.Clock
}

// NewEngine returns an engine using the given clock.
func NewEngine(c clock.Clock) *Engine {
	return &Engine{clock: c}
}

// Reconcile aligns meta with goals in place and copies the surviving stable
// ids onto the parsed actions. For each outcome:
//
//   - the meta list is truncated or extended to the action count, new
//     entries synthesized from the parsed action;
//   - each action takes the id its positional meta entry carries;
//   - a checked action whose status is not done is upgraded to done;
//   - an unchecked action whose status is done is downgraded to planned,
//     while in-progress and blocked are left alone.
//
// Reconcile never reorders either side. A user who reorders lines in the
// editor reassigns metadata positionally; that is accepted behavior.
func (e *Engine) Reconcile(meta *domain.DayMeta, goals *domain.DailyGoals) {
	changed := false
	for _, t := range domain.OutcomeTypes() {
		outcome := goals.Outcome(t)
		list := meta.List(t)
		if e.reconcileOutcome(&list, outcome) {
			changed = true
		}
		meta.SetList(t, list)

		// Reflections live only in the sidecar; restore them after a parse.
		if refl := meta.Reflection(t); refl != "" && outcome.Reflection == "" {
			outcome.Reflection = refl
		}
	}
	if changed {
		meta.Modified = e.clock.Now().UTC()
	}
}

func (e *Engine) reconcileOutcome(list *[]domain.ActionMeta, outcome *domain.Outcome) bool {
	changed := false

	// Align lengths.
	if len(*list) > len(outcome.Actions) {
		*list = (*list)[:len(outcome.Actions)]
		changed = true
	}
	for len(*list) < len(outcome.Actions) {
		a := &outcome.Actions[len(*list)]
		*list = append(*list, domain.MetaForAction(a))
		changed = true
	}

	for i := range outcome.Actions {
		action := &outcome.Actions[i]
		m := &(*list)[i]

		// The sidecar owns identity.
		action.ID = m.ID
		if m.ObjectiveID != "" {
			action.LinkObjective(m.ObjectiveID)
		}

		switch {
		case action.Completed && m.Status != domain.ActionDone:
			m.Status = domain.ActionDone
			changed = true
		case !action.Completed && m.Status == domain.ActionDone:
			m.Status = domain.ActionPlanned
			changed = true
		}

		// The checkbox cannot express in-progress or blocked, so an
		// unchecked box leaves those states untouched. Project the meta
		// status back onto the action for downstream consumers.
		if !action.Completed && (m.Status == domain.ActionInProgress || m.Status == domain.ActionBlocked) {
			action.Status = m.Status
		} else {
			action.SetStatus(m.Status)
		}
		action.Origin = m.Origin
	}

	return changed
}

// CarryMask selects which incomplete actions to copy forward. A nil mask
// carries everything incomplete.
type CarryMask func(outcome domain.OutcomeType, action *domain.Action) bool

// CarryOver copies incomplete, non-empty actions from a previous day into
// today, index for index: yesterday's slot i lands in today's slot i, and
// only when that slot exists and is still empty. Occupied slots are never
// overwritten and nothing is appended. Copied actions receive fresh ids,
// planned status, and carry-over origin. It returns the number of actions
// carried.
func (e *Engine) CarryOver(from, to *domain.DailyGoals, mask CarryMask) int {
	carried := 0
	for _, t := range domain.OutcomeTypes() {
		src := from.Outcome(t)
		dst := to.Outcome(t)

		for i := range src.Actions {
			a := &src.Actions[i]
			if a.Completed || a.Text == "" {
				continue
			}
			if mask != nil && !mask(t, a) {
				continue
			}
			if i >= len(dst.Actions) || dst.Actions[i].Text != "" {
				continue
			}
			dst.Actions[i] = placedAction(a.Text, domain.OriginCarryOver, a.AllObjectiveIDs())
			carried++
		}
	}
	return carried
}

// ApplyTemplate lays a named template over an outcome, index for index:
// the slot list grows to the template length (capped at five), then
// template[i] fills actions[i] only when that slot is empty. Occupied
// slots keep their text. It returns the number of actions placed.
func (e *Engine) ApplyTemplate(templates *domain.ActionTemplates, name string, outcome *domain.Outcome) (int, error) {
	entries, err := templates.Get(name)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, errors.Wrapf(errors.ErrTemplateEmpty, "%q", name)
	}

	want := len(entries)
	if want > constants.MaxActionsPerOutcome {
		want = constants.MaxActionsPerOutcome
	}
	for len(outcome.Actions) < want {
		outcome.Actions = append(outcome.Actions, domain.NewEmptyAction())
	}

	placed := 0
	for i := 0; i < want; i++ {
		if outcome.Actions[i].Text != "" {
			continue
		}
		outcome.Actions[i] = placedAction(entries[i], domain.OriginTemplate, nil)
		placed++
	}
	return placed, nil
}

// placedAction builds a fresh planned action for engine placement.
func placedAction(text string, origin domain.ActionOrigin, objectiveIDs []string) domain.Action {
	a, _ := domain.NewAction(text)
	a.Origin = origin
	for _, id := range objectiveIDs {
		a.LinkObjective(id)
	}
	return a
}
