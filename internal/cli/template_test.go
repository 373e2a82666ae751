package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/focusfive/internal/domain"
)

func TestRunTemplateAddListRm(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	require.NoError(t, runTemplateAdd(flags, repo, "morning", []string{"meditate", "stretch"}, &out))
	assert.Contains(t, out.String(), `Template "morning" saved with 2 action(s)`)

	out.Reset()
	require.NoError(t, runTemplateList(flags, newTestRepository(flags), &out))
	assert.Contains(t, out.String(), "morning")
	assert.Contains(t, out.String(), "meditate; stretch")

	out.Reset()
	require.NoError(t, runTemplateRm(flags, newTestRepository(flags), "morning", &out))
	assert.Contains(t, out.String(), `Template "morning" removed`)

	out.Reset()
	require.NoError(t, runTemplateList(flags, newTestRepository(flags), &out))
	assert.Contains(t, out.String(), "No templates defined")
}

func TestRunTemplateRmMissing(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	err := runTemplateRm(flags, repo, "nope", &out)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunTemplateApplyFillsSlots(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	require.NoError(t, runAdd(flags, repo, "health", "Existing action", &out))
	require.NoError(t, runTemplateAdd(flags, repo, "morning", []string{"meditate", "stretch"}, &out))

	out.Reset()
	require.NoError(t, runTemplateApply(flags, repo, "morning", "health", &out))
	assert.Contains(t, out.String(), `Applied "morning" to Health: 1 action(s) placed`)

	session, err := repo.LoadDay(mustDate(t, testDay))
	require.NoError(t, err)
	health := session.Goals.Outcome(domain.OutcomeHealth)
	assert.Equal(t, "Existing action", health.Actions[0].Text)
	assert.Equal(t, "stretch", health.Actions[1].Text)
	assert.Empty(t, health.Actions[2].Text)
	assert.Equal(t, domain.OriginTemplate, health.Actions[1].Origin)
}

func TestRunTemplateApplyMissing(t *testing.T) {
	flags, repo := newTestEnv(t)
	var out bytes.Buffer

	err := runTemplateApply(flags, repo, "nope", "work", &out)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunTemplateImport(t *testing.T) {
	flags, repo := newTestEnv(t)

	path := filepath.Join(t.TempDir(), "rituals.yaml")
	yaml := "morning:\n  - meditate\n  - stretch\nshutdown:\n  - plan tomorrow\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	var out bytes.Buffer
	require.NoError(t, runTemplateImport(flags, repo, path, &out))
	assert.Contains(t, out.String(), "Imported 2 template(s)")

	templates, err := newTestRepository(flags).Templates()
	require.NoError(t, err)
	actions, err := templates.Get("shutdown")
	require.NoError(t, err)
	assert.Equal(t, []string{"plan tomorrow"}, actions)
}

func TestRunTemplateImportBadYAML(t *testing.T) {
	flags, repo := newTestEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid\n"), 0o600))

	var out bytes.Buffer
	err := runTemplateImport(flags, repo, path, &out)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
