package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayMetaMirrorsGoals(t *testing.T) {
	date, err := NewDate(2025, time.January, 15)
	require.NoError(t, err)
	goals := NewDailyGoals(date)
	goals.Work.Actions[0].SetText("done one")
	goals.Work.Actions[0].SetStatus(ActionDone)
	goals.Health.Actions[0].SetText("open one")
	goals.Family.SetReflection("quiet evening")

	now := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC)
	meta := NewDayMeta(goals, now)

	assert.Equal(t, now, meta.Created)
	assert.Equal(t, now, meta.Modified)
	require.Len(t, meta.Work, 3)
	assert.Equal(t, goals.Work.Actions[0].ID, meta.Work[0].ID)
	assert.Equal(t, ActionDone, meta.Work[0].Status)
	assert.Equal(t, ActionPlanned, meta.Health[0].Status)
	assert.Equal(t, "quiet evening", meta.Reflection(OutcomeFamily))
	assert.Empty(t, meta.Reflection(OutcomeWork))
}

func TestMetaForAction(t *testing.T) {
	a, _ := NewAction("task")
	a.LinkObjective("obj-1")
	m := MetaForAction(&a)
	assert.Equal(t, a.ID, m.ID)
	assert.Equal(t, ActionPlanned, m.Status)
	assert.Equal(t, OriginManual, m.Origin)
	assert.Equal(t, "obj-1", m.ObjectiveID)

	a.SetStatus(ActionDone)
	assert.Equal(t, ActionDone, MetaForAction(&a).Status)

	// Missing origin defaults to manual.
	bare := Action{ID: "x", Completed: false}
	assert.Equal(t, OriginManual, MetaForAction(&bare).Origin)
}

func TestDayMetaListAccessors(t *testing.T) {
	meta := &DayMeta{}
	list := []ActionMeta{{ID: "one", Status: ActionBlocked}}
	meta.SetList(OutcomeHealth, list)
	assert.Equal(t, list, meta.List(OutcomeHealth))
	assert.Empty(t, meta.List(OutcomeWork))
	assert.Empty(t, meta.List(OutcomeFamily))
}

func TestDayMetaReflections(t *testing.T) {
	meta := &DayMeta{}
	assert.Empty(t, meta.Reflection(OutcomeWork))

	meta.SetReflection(OutcomeWork, "shipped the release")
	assert.Equal(t, "shipped the release", meta.Reflection(OutcomeWork))

	// Empty text removes the entry.
	meta.SetReflection(OutcomeWork, "")
	assert.Empty(t, meta.Reflection(OutcomeWork))

	// Deleting from a nil map is a no-op, not a panic.
	fresh := &DayMeta{}
	fresh.SetReflection(OutcomeHealth, "")
}
