package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
)

func TestDayMetaStoreRoundTrip(t *testing.T) {
	store := NewDayMetaStore(testConfig(t))
	date := mustDate(t, 2025, time.January, 15)
	now := time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)

	goals := domain.NewDailyGoals(date)
	goals.Work.Actions[0].SetText("task")
	meta := domain.NewDayMeta(goals, now)
	meta.Work[0].Status = domain.ActionInProgress

	require.NoError(t, store.Save(date, meta))

	loaded, err := store.Load(date)
	require.NoError(t, err)
	assert.Equal(t, meta.Work[0].ID, loaded.Work[0].ID)
	assert.Equal(t, domain.ActionInProgress, loaded.Work[0].Status)
	assert.Equal(t, meta.Version, loaded.Version)
}

func TestDayMetaStoreLoadOrCreate(t *testing.T) {
	store := NewDayMetaStore(testConfig(t))
	date := mustDate(t, 2025, time.January, 15)
	now := time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)
	goals := domain.NewDailyGoals(date)

	_, err := store.Load(date)
	require.ErrorIs(t, err, errors.ErrNotFound)

	meta, err := store.LoadOrCreate(date, goals, now)
	require.NoError(t, err)
	require.Len(t, meta.Work, 3)
	assert.Equal(t, goals.Work.Actions[0].ID, meta.Work[0].ID)
}

func TestVisionStoreDefaultAndRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	store := NewVisionStore(cfg)

	v, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, v.Work)

	truncated := v.SetVision(domain.OutcomeWork, "Build a company that outlasts me")
	assert.False(t, truncated)
	require.NoError(t, store.Save(v))

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Build a company that outlasts me", again.Vision(domain.OutcomeWork))
}

func TestTemplatesStoreDefaultAndRoundTrip(t *testing.T) {
	store := NewTemplatesStore(testConfig(t))

	tm, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tm.Names())

	_, err = tm.Add("morning", []string{"meditate", "stretch"})
	require.NoError(t, err)
	require.NoError(t, store.Save(tm))

	again, err := store.Load()
	require.NoError(t, err)
	actions, err := again.Get("morning")
	require.NoError(t, err)
	assert.Equal(t, []string{"meditate", "stretch"}, actions)
}

func TestObjectivesStoreRoundTrip(t *testing.T) {
	store := NewObjectivesStore(testConfig(t))

	data, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, data.Objectives)

	obj, err := domain.NewObjective(domain.OutcomeWork, "Grow revenue")
	require.NoError(t, err)
	data.Add(*obj)
	require.NoError(t, store.Save(data))

	again, err := store.Load()
	require.NoError(t, err)
	found, err := again.Find(obj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grow revenue", found.Title)
	assert.Equal(t, domain.ObjectiveActive, found.Status)
}

func TestIndicatorsStoreRoundTrip(t *testing.T) {
	store := NewIndicatorsStore(testConfig(t))

	data, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, data.Indicators)

	ind, err := domain.NewIndicator("deep work hours", domain.UnitMinutes)
	require.NoError(t, err)
	data.Add(*ind)
	require.NoError(t, store.Save(data))

	again, err := store.Load()
	require.NoError(t, err)
	found, err := again.Find(ind.ID)
	require.NoError(t, err)
	assert.Equal(t, "deep work hours", found.Name)
	assert.True(t, found.Active)
}

// TestDocumentStoreCorruptFile confirms an unparseable document is an
// error, never silently replaced with a default.
func TestDocumentStoreCorruptFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.VisionFilePath(), []byte("{not json"), 0o644))

	_, err := NewVisionStore(cfg).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestReviewStoreRoundTrip(t *testing.T) {
	store := NewReviewStore(testConfig(t))
	date := mustDate(t, 2025, time.August, 27)

	review := domain.NewWeeklyReview(date)
	review.Wins = []string{"shipped the release"}
	require.NoError(t, store.Save(&review))

	loaded, err := store.Load(review.Period)
	require.NoError(t, err)
	assert.Equal(t, review.Period, loaded.Period)
	assert.Equal(t, []string{"shipped the release"}, loaded.Wins)

	_, err = store.Load("2020-W01")
	require.ErrorIs(t, err, errors.ErrNotFound)
}
