package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGoals(t *testing.T) *DailyGoals {
	t.Helper()
	date, err := NewDate(2025, time.January, 15)
	require.NoError(t, err)
	return NewDailyGoals(date)
}

func TestNewDailyGoals(t *testing.T) {
	goals := testGoals(t)
	assert.Equal(t, "2025-01-15", goals.Date.String())

	order := goals.Outcomes()
	assert.Equal(t, OutcomeWork, order[0].OutcomeType)
	assert.Equal(t, OutcomeHealth, order[1].OutcomeType)
	assert.Equal(t, OutcomeFamily, order[2].OutcomeType)
}

func TestDailyGoalsOutcomeAccessor(t *testing.T) {
	goals := testGoals(t)
	assert.Same(t, &goals.Work, goals.Outcome(OutcomeWork))
	assert.Same(t, &goals.Health, goals.Outcome(OutcomeHealth))
	assert.Same(t, &goals.Family, goals.Outcome(OutcomeFamily))
	assert.Nil(t, goals.Outcome(OutcomeType("money")))
}

func TestDailyGoalsStats(t *testing.T) {
	goals := testGoals(t)
	goals.Work.Actions[0].SetText("a")
	goals.Work.Actions[0].SetStatus(ActionDone)
	goals.Work.Actions[1].SetText("b")
	goals.Work.Actions[1].SetStatus(ActionDone)
	goals.Health.Actions[0].SetText("c")
	goals.Health.Actions[0].SetStatus(ActionDone)

	stats := goals.Stats()
	assert.Equal(t, 3, stats.Completed)
	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 33, stats.Percentage)
	assert.Equal(t, OutcomeWork, stats.Best)

	assert.Equal(t, 2, stats.ByOutcome[0].Done)
	assert.Equal(t, 3, stats.ByOutcome[0].Total)

	// All three outcomes sit under 50%, so all need attention.
	assert.Contains(t, stats.NeedsAttention, OutcomeFamily)
}

func TestDailyGoalsStatsBestTieKeepsOrder(t *testing.T) {
	goals := testGoals(t)
	assert.Equal(t, OutcomeWork, goals.Stats().Best)
}

func TestHasCompletedAction(t *testing.T) {
	goals := testGoals(t)
	assert.False(t, goals.HasCompletedAction())

	// A checked but empty slot does not count.
	goals.Family.Actions[0].SetStatus(ActionDone)
	assert.False(t, goals.HasCompletedAction())

	goals.Family.Actions[0].SetText("dinner")
	assert.True(t, goals.HasCompletedAction())
}
