package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	defer st.Close()

	users, err := st.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users, "fresh store starts empty")

	in := []models.User{
		{ID: "u1", Username: "alice", Role: models.RoleAdmin, CreatedAt: time.Now().UTC()},
		{ID: "u2", Username: "bob", Role: models.RoleUser},
	}
	require.NoError(t, st.SaveUsers(ctx, in))

	out, err := st.Users(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "alice", out[0].Username)

	tasks := []models.Task{{ID: "t1", Title: "deploy", Status: models.StatusOpen, Priority: models.PriorityHigh}}
	require.NoError(t, st.SaveTasks(ctx, tasks))
	gotTasks, err := st.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, gotTasks, 1)
	assert.Equal(t, models.PriorityHigh, gotTasks[0].Priority)
}

func TestMemoryCollectionsIndependent(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	defer st.Close()

	require.NoError(t, st.SaveUsers(ctx, []models.User{{ID: "u1"}}))

	teams, err := st.Teams(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
	notifications, err := st.Notifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestSessionSingleton(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	defer st.Close()

	s, err := st.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	u := models.User{ID: "u1", Username: "alice"}
	require.NoError(t, st.SaveSession(ctx, &u))
	s, err = st.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "alice", s.Username)

	// nil clears
	require.NoError(t, st.SaveSession(ctx, nil))
	s, err = st.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestCorruptBlobDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	backend := &memoryKV{blobs: map[string][]byte{
		keyUsers: []byte("{not json"),
	}}
	st := newBlobStore(backend)

	users, err := st.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// a corrupt session reads as logged out
	backend.blobs[keySession] = []byte("][")
	s, err := st.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestNilSliceSavesAsEmpty(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	defer st.Close()

	require.NoError(t, st.SaveTeams(ctx, nil))
	teams, err := st.Teams(ctx)
	require.NoError(t, err)
	require.NotNil(t, teams)
	assert.Empty(t, teams)
}
