package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
)

const sampleDoc = `# January 15, 2025 - Day 12

## Work (Goal: Ship v1)
- [x] Call investors
- [ ] Prep deck
- [ ] Review PRs

## Health
- [x] Morning run
- [ ] Meal prep
- [ ] Sleep by 11

## Family
- [ ] Call parents
- [ ] Plan weekend
- [x] Dinner together
`

// TestParseSampleDocument verifies the canonical document decodes fully.
func TestParseSampleDocument(t *testing.T) {
	goals, warnings, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "2025-01-15", goals.Date.String())
	assert.Equal(t, 12, goals.DayNumber)
	assert.Equal(t, "Ship v1", goals.Work.Goal)
	assert.Empty(t, goals.Health.Goal)

	require.Len(t, goals.Work.Actions, 3)
	assert.True(t, goals.Work.Actions[0].Completed)
	assert.Equal(t, "Call investors", goals.Work.Actions[0].Text)
	assert.False(t, goals.Work.Actions[1].Completed)

	assert.True(t, goals.Health.Actions[0].Completed)
	assert.True(t, goals.Family.Actions[2].Completed)
}

// TestParseHeaderVariants covers month abbreviations, case folding, missing
// day number, and uppercase checkbox markers.
func TestParseHeaderVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"full month", "# January 15, 2025", "2025-01-15"},
		{"abbreviated month", "# Jan 15, 2025", "2025-01-15"},
		{"lowercase month", "# january 15, 2025", "2025-01-15"},
		{"uppercase abbreviation", "# DEC 1, 2024", "2024-12-01"},
		{"zero padded day", "# March 05, 2025", "2025-03-05"},
		{"with day number", "# July 4, 2025 - Day 100", "2025-07-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals, _, err := Parse([]byte(tt.header + "\n\n## Work\n- [ ] x\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, goals.Date.String())
		})
	}
}

// TestParseHeaderBeyondSearchWindow rejects documents whose date header sits
// past the first ten lines.
func TestParseHeaderBeyondSearchWindow(t *testing.T) {
	doc := strings.Repeat("preamble\n", 10) + "# January 15, 2025\n"
	_, _, err := Parse([]byte(doc))
	require.ErrorIs(t, err, errors.ErrNoDateHeader)
}

func TestParseHeaderWithinSearchWindow(t *testing.T) {
	doc := strings.Repeat("preamble\n", 9) + "# January 15, 2025\n"
	goals, _, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", goals.Date.String())
}

func TestParseErrors(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, _, err := Parse(nil)
		require.ErrorIs(t, err, errors.ErrEmptyDocument)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		_, _, err := Parse([]byte{0xff, 0xfe, 0x41})
		require.ErrorIs(t, err, errors.ErrEncodingInvalid)
	})

	t.Run("no date header", func(t *testing.T) {
		_, _, err := Parse([]byte("just some text\n"))
		require.ErrorIs(t, err, errors.ErrNoDateHeader)
	})

	t.Run("unknown month", func(t *testing.T) {
		_, _, err := Parse([]byte("# Janvier 15, 2025\n"))
		require.ErrorIs(t, err, errors.ErrInvalidMonth)
	})

	t.Run("impossible date", func(t *testing.T) {
		_, _, err := Parse([]byte("# February 30, 2025\n"))
		require.ErrorIs(t, err, errors.ErrInvalidDate)
	})
}

// TestParseLeapDay confirms Feb 29 validity depends on the year.
func TestParseLeapDay(t *testing.T) {
	goals, _, err := Parse([]byte("# February 29, 2024\n"))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", goals.Date.String())

	_, _, err = Parse([]byte("# February 29, 2023\n"))
	require.ErrorIs(t, err, errors.ErrInvalidDate)
}

// TestParseExcessActions checks the sixth and later action lines in a
// section are discarded with a warning rather than failing the parse.
func TestParseExcessActions(t *testing.T) {
	var b strings.Builder
	b.WriteString("# January 15, 2025\n\n## Work\n")
	for i := 0; i < 7; i++ {
		b.WriteString("- [ ] task\n")
	}

	goals, warnings, err := Parse([]byte(b.String()))
	require.NoError(t, err)
	assert.Len(t, goals.Work.Actions, 5)
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "more than 5 actions")
}

// TestParseVariableActionCounts confirms sections may carry one to five
// actions without padding to three.
func TestParseVariableActionCounts(t *testing.T) {
	doc := `# January 15, 2025

## Work
- [ ] only one

## Health
- [ ] a
- [ ] b
- [ ] c
- [ ] d
- [ ] e

## Family
- [ ] x
- [ ] y
`
	goals, warnings, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Len(t, goals.Work.Actions, 1)
	assert.Len(t, goals.Health.Actions, 5)
	assert.Len(t, goals.Family.Actions, 2)
}

// TestParseObjectiveMetadata reads the indented objective lines under an
// action and attaches the ids to it.
func TestParseObjectiveMetadata(t *testing.T) {
	doc := `# January 15, 2025

## Work
- [ ] Draft roadmap
  objective: obj-1
- [x] Ship feature
  objectives: obj-2, obj-3
`
	goals, _, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, goals.Work.Actions, 2)
	assert.Equal(t, []string{"obj-1"}, goals.Work.Actions[0].AllObjectiveIDs())
	assert.Equal(t, []string{"obj-2", "obj-3"}, goals.Work.Actions[1].AllObjectiveIDs())
}

// TestParseAssignsFreshIdentity confirms parsing mints new action ids.
func TestParseAssignsFreshIdentity(t *testing.T) {
	first, _, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	second, _, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	assert.NotEqual(t, first.Work.Actions[0].ID, second.Work.Actions[0].ID)
}

func TestParseIgnoresStrayLines(t *testing.T) {
	doc := `# January 15, 2025

random note before any section
- [ ] orphan action

## Work
some prose the user typed
- [x] Real action
`
	goals, _, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, goals.Work.Actions, 3)
	assert.Equal(t, "Real action", goals.Work.Actions[0].Text)
	assert.True(t, goals.Work.Actions[0].Completed)
}

// TestSerializeCanonicalForm checks the exact byte layout of the output.
func TestSerializeCanonicalForm(t *testing.T) {
	date, err := domain.NewDate(2025, time.January, 15)
	require.NoError(t, err)
	goals := domain.NewDailyGoals(date)
	goals.DayNumber = 12
	goals.Work.Goal = "Ship v1"
	goals.Work.Actions[0].SetText("Call investors")
	goals.Work.Actions[0].SetStatus(domain.ActionDone)

	out := string(Serialize(goals))
	assert.True(t, strings.HasPrefix(out, "# January 15, 2025 - Day 12\n\n## Work (Goal: Ship v1)\n- [x] Call investors\n"))
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.Contains(out, " \n"), "no trailing whitespace")
	assert.NotContains(t, out, "\n\n\n")
}

// TestRoundTrip parses a document, serializes it, and parses it again; the
// visible content must survive unchanged.
func TestRoundTrip(t *testing.T) {
	goals, _, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	out := Serialize(goals)
	again, warnings, err := Parse(out)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, goals.Date, again.Date)
	assert.Equal(t, goals.DayNumber, again.DayNumber)
	for i, o := range goals.Outcomes() {
		other := again.Outcomes()[i]
		assert.Equal(t, o.Goal, other.Goal)
		require.Len(t, other.Actions, len(o.Actions))
		for j := range o.Actions {
			assert.Equal(t, o.Actions[j].Text, other.Actions[j].Text)
			assert.Equal(t, o.Actions[j].Completed, other.Actions[j].Completed)
		}
	}

	// Serialization is deterministic.
	assert.Equal(t, out, Serialize(again))
}

// TestRoundTripObjectives keeps objective links through a full cycle.
func TestRoundTripObjectives(t *testing.T) {
	date, err := domain.NewDate(2025, time.June, 1)
	require.NoError(t, err)
	goals := domain.NewDailyGoals(date)
	goals.Work.Actions[0].SetText("Linked work")
	goals.Work.Actions[0].LinkObjective("obj-a")
	goals.Work.Actions[0].LinkObjective("obj-b")
	goals.Health.Actions[0].SetText("Solo link")
	goals.Health.Actions[0].LinkObjective("obj-c")

	again, _, err := Parse(Serialize(goals))
	require.NoError(t, err)
	assert.Equal(t, []string{"obj-a", "obj-b"}, again.Work.Actions[0].AllObjectiveIDs())
	assert.Equal(t, []string{"obj-c"}, again.Health.Actions[0].AllObjectiveIDs())
}

func TestSerializeEmptyActionSlots(t *testing.T) {
	date, err := domain.NewDate(2025, time.January, 2)
	require.NoError(t, err)
	goals := domain.NewDailyGoals(date)

	out := string(Serialize(goals))
	assert.Equal(t, 9, strings.Count(out, "- [ ]"))

	again, _, err := Parse([]byte(out))
	require.NoError(t, err)
	assert.Len(t, again.Work.Actions, 3)
	assert.Empty(t, again.Work.Actions[0].Text)
}
