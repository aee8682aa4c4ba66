package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := NewFile(dir)
	require.NoError(t, err)
	defer st.Close()

	tasks, err := st.Tasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks, "missing file reads as empty")

	in := []models.Task{{ID: "t1", Title: "write docs", Status: models.StatusOpen}}
	require.NoError(t, st.SaveTasks(ctx, in))

	// a second store over the same dir sees the write
	st2, err := NewFile(dir)
	require.NoError(t, err)
	defer st2.Close()
	out, err := st2.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "write docs", out[0].Title)
}

func TestFileCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("garbage"), 0o644))

	st, err := NewFile(dir)
	require.NoError(t, err)
	defer st.Close()

	users, err := st.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFileSessionDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := NewFile(dir)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.SaveSession(ctx, &models.User{ID: "u1"}))
	_, err = os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)

	require.NoError(t, st.SaveSession(ctx, nil))
	_, err = os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(err))

	// deleting an absent session is fine
	require.NoError(t, st.SaveSession(ctx, nil))
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := NewFile(dir)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.SaveUsers(ctx, []models.User{{ID: "u1"}}))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, filepath.Ext(e.Name()), ".json", "unexpected file %s", e.Name())
	}
}
