package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"one"}, splitList("one"))
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b ,c"))
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b,"))
}

func TestRunReviewSaveAndShow(t *testing.T) {
	flags, repo := newTestEnv(t)

	var out bytes.Buffer
	require.NoError(t, runReviewSave(flags, repo, "shipped v1, hired Sam", "late nights", "ship smaller", "plan v2", &out))
	// 2025-01-15 falls in ISO week 3.
	assert.Contains(t, out.String(), "Saved review for 2025-W03")

	out.Reset()
	require.NoError(t, runReviewShow(flags, newTestRepository(flags), "", &out))
	text := out.String()
	assert.Contains(t, text, "Review 2025-W03")
	assert.Contains(t, text, "Wins:")
	assert.Contains(t, text, "- shipped v1")
	assert.Contains(t, text, "- hired Sam")
	assert.Contains(t, text, "Challenges:")
	assert.Contains(t, text, "Next actions:")
	assert.Contains(t, text, "- plan v2")
}

func TestRunReviewShowExplicitPeriod(t *testing.T) {
	flags, repo := newTestEnv(t)

	var out bytes.Buffer
	require.NoError(t, runReviewSave(flags, repo, "win", "", "", "", &out))

	out.Reset()
	require.NoError(t, runReviewShow(flags, newTestRepository(flags), "2025-W03", &out))
	assert.Contains(t, out.String(), "- win")
}

func TestRunReviewShowMissing(t *testing.T) {
	flags, repo := newTestEnv(t)

	var out bytes.Buffer
	err := runReviewShow(flags, repo, "2024-W52", &out)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
