package domain

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/errors"
)

func TestActionTemplatesAddGetRemove(t *testing.T) {
	templates := NewActionTemplates()

	truncated, err := templates.Add("Morning Flow", []string{"Hydrate", "Stretch", "Plan day"})
	require.NoError(t, err)
	assert.False(t, truncated)

	actions, err := templates.Get("Morning Flow")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hydrate", "Stretch", "Plan day"}, actions)

	// Same name replaces the list.
	_, err = templates.Add("Morning Flow", []string{"Hydrate"})
	require.NoError(t, err)
	actions, err = templates.Get("Morning Flow")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hydrate"}, actions)

	assert.True(t, templates.Remove("Morning Flow"))
	assert.False(t, templates.Remove("Morning Flow"))

	_, err = templates.Get("Morning Flow")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTemplateNotFound))
}

func TestActionTemplatesAddValidation(t *testing.T) {
	templates := NewActionTemplates()

	_, err := templates.Add("", []string{"x"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyValue))

	_, err = templates.Add("empty", nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTemplateEmpty))
}

func TestActionTemplatesAddClamps(t *testing.T) {
	templates := NewActionTemplates()

	truncated, err := templates.Add("big", []string{"1", "2", "3", "4", "5", "6"})
	require.NoError(t, err)
	assert.True(t, truncated)
	actions, err := templates.Get("big")
	require.NoError(t, err)
	assert.Len(t, actions, 5)

	truncated, err = templates.Add("long", []string{strings.Repeat("x", 501)})
	require.NoError(t, err)
	assert.True(t, truncated)
	actions, err = templates.Get("long")
	require.NoError(t, err)
	assert.Len(t, []rune(actions[0]), 500)
}

func TestActionTemplatesNamesSorted(t *testing.T) {
	templates := NewActionTemplates()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := templates.Add(name, []string{"x"})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, templates.Names())
}

func TestFiveYearVision(t *testing.T) {
	vision := NewFiveYearVision()
	assert.Empty(t, vision.Vision(OutcomeWork))

	assert.False(t, vision.SetVision(OutcomeWork, "Run a profitable studio"))
	assert.Equal(t, "Run a profitable studio", vision.Vision(OutcomeWork))
	assert.Empty(t, vision.Vision(OutcomeHealth))

	assert.True(t, vision.SetVision(OutcomeHealth, strings.Repeat("v", 1001)))
	assert.Len(t, []rune(vision.Vision(OutcomeHealth)), 1000)
}

func TestPhaseForHour(t *testing.T) {
	tests := []struct {
		hour int
		want RitualPhase
	}{
		{0, PhaseNeutral},
		{4, PhaseNeutral},
		{5, PhaseMorning},
		{11, PhaseMorning},
		{12, PhaseNeutral},
		{16, PhaseNeutral},
		{17, PhaseEvening},
		{22, PhaseEvening},
		{23, PhaseNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestRitualPhaseGreeting(t *testing.T) {
	assert.Contains(t, PhaseMorning.Greeting(), "Morning")
	assert.Contains(t, PhaseEvening.Greeting(), "Evening")
	assert.Contains(t, PhaseNeutral.Greeting(), "FocusFive")
}
