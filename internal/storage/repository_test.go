package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/clock"
	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/domain"
)

var repoNow = time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(testConfig(t), clock.Fixed{T: repoNow})
}

// TestNewRepositorySweepsStaleTemps removes orphaned temp files left behind
// by a run that died mid-write, without touching real files.
func TestNewRepositorySweepsStaleTemps(t *testing.T) {
	cfg := config.New(config.Options{DataRoot: t.TempDir()})
	require.NoError(t, os.MkdirAll(cfg.GoalsDir, 0o755))

	stale := filepath.Join(cfg.GoalsDir, ".2025-01-14.md.tmp.123.456")
	require.NoError(t, os.WriteFile(stale, []byte("partial"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	keep := filepath.Join(cfg.GoalsDir, "2025-01-14.md")
	require.NoError(t, os.WriteFile(keep, []byte("# January 14, 2025\n"), 0o644))

	NewRepository(cfg, clock.Fixed{T: repoNow})

	assert.NoFileExists(t, stale)
	assert.FileExists(t, keep)
}

func TestRepositoryLoadDayFresh(t *testing.T) {
	repo := testRepo(t)
	date := mustDate(t, 2025, time.January, 15)

	session, err := repo.LoadDay(date)
	require.NoError(t, err)
	assert.Equal(t, date, session.Date)
	require.Len(t, session.Goals.Work.Actions, 3)
	require.Len(t, session.Meta.Work, 3)
	assert.Equal(t, session.Goals.Work.Actions[0].ID, session.Meta.Work[0].ID)

	// Same date returns the cached session.
	again, err := repo.LoadDay(date)
	require.NoError(t, err)
	assert.Same(t, session, again)
}

// TestRepositoryDayRoundTrip saves a day and reloads it through a second
// repository, checking that sidecar identity and status survive while the
// Markdown text round-trips.
func TestRepositoryDayRoundTrip(t *testing.T) {
	cfg := config.New(config.Options{DataRoot: t.TempDir()})
	date, err := domain.NewDate(2025, time.January, 15)
	require.NoError(t, err)

	repo := NewRepository(cfg, clock.Fixed{T: repoNow})
	session, err := repo.LoadDay(date)
	require.NoError(t, err)
	session.Goals.Work.Actions[0].SetText("Call investors")
	session.Meta.Work[0].Status = domain.ActionInProgress
	wantID := session.Meta.Work[0].ID

	repo.MarkDirty(ComponentGoals, ComponentMeta)
	require.Empty(t, repo.SaveAll())

	fresh := NewRepository(cfg, clock.Fixed{T: repoNow})
	reloaded, err := fresh.LoadDay(date)
	require.NoError(t, err)
	assert.Equal(t, "Call investors", reloaded.Goals.Work.Actions[0].Text)
	assert.Equal(t, wantID, reloaded.Goals.Work.Actions[0].ID)
	assert.Equal(t, domain.ActionInProgress, reloaded.Goals.Work.Actions[0].Status)
}

// TestRepositoryExternalEditReconciled checks a box in the editor between
// sessions and expects the sidecar status to upgrade on the next load.
func TestRepositoryExternalEditReconciled(t *testing.T) {
	cfg := config.New(config.Options{DataRoot: t.TempDir()})
	date, err := domain.NewDate(2025, time.January, 15)
	require.NoError(t, err)

	repo := NewRepository(cfg, clock.Fixed{T: repoNow})
	session, err := repo.LoadDay(date)
	require.NoError(t, err)
	session.Goals.Work.Actions[0].SetText("Call investors")
	repo.MarkDirty(ComponentGoals, ComponentMeta)
	require.Empty(t, repo.SaveAll())

	// The user checks the box in their editor.
	path := cfg.GoalsFilePath(date.String())
	data, err := os.ReadFile(path) //#nosec G304 -- test file path
	require.NoError(t, err)
	edited := strings.Replace(string(data), "- [ ] Call investors", "- [x] Call investors", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	fresh := NewRepository(cfg, clock.Fixed{T: repoNow})
	reloaded, err := fresh.LoadDay(date)
	require.NoError(t, err)
	assert.True(t, reloaded.Goals.Work.Actions[0].Completed)
	assert.Equal(t, domain.ActionDone, reloaded.Meta.Work[0].Status)
}

func TestRepositorySaveAllSkipsClean(t *testing.T) {
	repo := testRepo(t)
	date := mustDate(t, 2025, time.January, 15)

	_, err := repo.LoadDay(date)
	require.NoError(t, err)

	// Nothing marked dirty, nothing written.
	require.Empty(t, repo.SaveAll())
	assert.False(t, repo.Goals().Exists(date))
}

// TestRepositorySaveAllIsolatesFailures lets one store fail without
// blocking the rest, and keeps the failed store dirty for retry.
func TestRepositorySaveAllIsolatesFailures(t *testing.T) {
	root := t.TempDir()
	cfg := config.New(config.Options{DataRoot: root})
	repo := NewRepository(cfg, clock.Fixed{T: repoNow})
	date := mustDate(t, 2025, time.January, 15)

	session, err := repo.LoadDay(date)
	require.NoError(t, err)
	session.Goals.Work.Actions[0].SetText("task")

	// Block the goals directory with a regular file so that store fails.
	require.NoError(t, os.WriteFile(filepath.Join(root, "goals"), []byte("x"), 0o644))

	repo.MarkDirty(ComponentGoals, ComponentMeta)
	failures := repo.SaveAll()
	require.Len(t, failures, 1)
	assert.Equal(t, ComponentGoals, failures[0].Component)

	// Meta still made it to disk and is no longer dirty.
	assert.FileExists(t, cfg.MetaFilePath(date.String()))
	assert.True(t, repo.Dirty(ComponentGoals))
	assert.False(t, repo.Dirty(ComponentMeta))
}

func TestRepositoryDocumentCaching(t *testing.T) {
	repo := testRepo(t)

	v1, err := repo.Vision()
	require.NoError(t, err)
	v2, err := repo.Vision()
	require.NoError(t, err)
	assert.Same(t, v1, v2)

	tm, err := repo.Templates()
	require.NoError(t, err)
	_, err = tm.Add("morning", []string{"stretch"})
	require.NoError(t, err)
	repo.MarkDirty(ComponentTemplates)
	require.Empty(t, repo.SaveAll())

	fresh := NewRepository(repo.Config(), clock.Fixed{T: repoNow})
	loaded, err := fresh.Templates()
	require.NoError(t, err)
	assert.Equal(t, []string{"morning"}, loaded.Names())
}
