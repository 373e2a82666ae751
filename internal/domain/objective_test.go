package domain

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/errors"
)

func TestNewObjective(t *testing.T) {
	obj, err := NewObjective(OutcomeWork, "Grow MRR to $50k")
	require.NoError(t, err)
	assert.NotEmpty(t, obj.ID)
	assert.Equal(t, OutcomeWork, obj.Domain)
	assert.Equal(t, ObjectiveActive, obj.Status)
	assert.False(t, obj.Start.IsZero())
	assert.Nil(t, obj.End)

	_, err = NewObjective(OutcomeWork, "")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrObjectiveTitleEmpty))
}

func TestObjectivesDataFind(t *testing.T) {
	data := NewObjectivesData()
	obj, err := NewObjective(OutcomeHealth, "Marathon ready")
	require.NoError(t, err)
	data.Add(*obj)

	found, err := data.Find(obj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marathon ready", found.Title)

	_, err = data.Find("missing")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestNewIndicator(t *testing.T) {
	ind, err := NewIndicator("Deep work hours", UnitMinutes)
	require.NoError(t, err)
	assert.NotEmpty(t, ind.ID)
	assert.Equal(t, IndicatorLeading, ind.Kind)
	assert.Equal(t, HigherIsBetter, ind.Direction)
	assert.True(t, ind.Active)

	_, err = NewIndicator("", UnitCount)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrIndicatorNameEmpty))
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
	}{
		{"count", UnitCount},
		{"MINUTES", UnitMinutes},
		{" dollars ", UnitDollars},
		{"percent", UnitPercent},
		{"", UnitCount},
		{"pages", CustomUnit("pages")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseUnit(tt.input), "input %q", tt.input)
	}
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "minutes", UnitMinutes.Label())
	assert.False(t, UnitMinutes.IsCustom())

	custom := CustomUnit("pages")
	assert.True(t, custom.IsCustom())
	assert.Equal(t, "pages", custom.Label())
	assert.Equal(t, Unit("custom:pages"), custom)
}

func TestNewObservation(t *testing.T) {
	when, err := NewDate(2025, 1, 15)
	require.NoError(t, err)

	obs := NewObservation("ind-1", when, 90, UnitMinutes)
	assert.NotEmpty(t, obs.ID)
	assert.Equal(t, "ind-1", obs.IndicatorID)
	assert.Equal(t, when, obs.When)
	assert.Equal(t, 90.0, obs.Value)
	assert.Equal(t, UnitMinutes, obs.Unit)
	assert.Equal(t, SourceManual, obs.Source)
	assert.False(t, obs.Created.IsZero())
}
