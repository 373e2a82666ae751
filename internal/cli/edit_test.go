package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/domain"
)

func TestRunEditRewordsKeepingIdentity(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer
	require.NoError(t, runAdd(flags, repo, "work", "Draft propsal", &out))
	require.NoError(t, runCheck(flags, repo, "work", "1", "in_progress", &out))

	session, err := repo.LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	before := session.Goals.Work.Actions[0]

	out.Reset()
	require.NoError(t, runEdit(flags, repo, "work", "1", "Draft proposal", &out))
	assert.Contains(t, out.String(), "Updated Work action 1: Draft proposal")

	reloaded, err := newTestRepository(flags).LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	after := reloaded.Goals.Work.Actions[0]
	assert.Equal(t, "Draft proposal", after.Text)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, domain.ActionInProgress, after.Status)
}

func TestRunEditRejectsEmptyText(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer
	require.NoError(t, runAdd(flags, repo, "work", "Something", &out))

	err := runEdit(flags, repo, "work", "1", "", &out)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunRemoveShiftsActionsAndSidecar(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer
	require.NoError(t, runAdd(flags, repo, "work", "First", &out))
	require.NoError(t, runAdd(flags, repo, "work", "Second", &out))
	require.NoError(t, runCheck(flags, repo, "work", "2", "done", &out))

	session, err := repo.LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	secondID := session.Goals.Work.Actions[1].ID

	out.Reset()
	require.NoError(t, runRemove(flags, repo, "work", "1", &out))
	assert.Contains(t, out.String(), "Removed Work action 1: First")

	// The surviving action keeps its identity and status after the shift.
	reloaded, err := newTestRepository(flags).LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	survivor := reloaded.Goals.Work.Actions[0]
	assert.Equal(t, "Second", survivor.Text)
	assert.Equal(t, secondID, survivor.ID)
	assert.Equal(t, domain.ActionDone, survivor.Status)
}

func TestRunRemoveBadIndex(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	err := runRemove(flags, repo, "work", "99", &out)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunGoalSetAndClear(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	require.NoError(t, runGoal(flags, repo, "health", "Run a 10k this month", &out))
	assert.Contains(t, out.String(), "Health goal: Run a 10k this month")

	session, err := newTestRepository(flags).LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	assert.Equal(t, "Run a 10k this month", session.Goals.Health.Goal)

	out.Reset()
	require.NoError(t, runGoal(flags, repo, "health", "", &out))
	assert.Contains(t, out.String(), "Cleared Health goal")
}

func TestRunReflectPersistsThroughSidecar(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	require.NoError(t, runReflect(flags, repo, "family", "Great dinner together", &out))
	assert.Contains(t, out.String(), "Saved Family reflection")

	// Reflections live in the sidecar only, so a reload restores them from
	// there rather than the Markdown file.
	session, err := newTestRepository(flags).LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	assert.Equal(t, "Great dinner together", session.Goals.Family.Reflection)
}
