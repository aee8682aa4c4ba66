package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
	"taskdesk/internal/store"
)

func seedNotifications(t *testing.T, st store.Store) {
	t.Helper()
	base := testNow
	ns := []models.Notification{
		{ID: "n1", UserID: "bob", Type: models.NotifyTaskAssigned, Message: "oldest", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "n2", UserID: "bob", Type: models.NotifyTaskCompleted, Message: "newest", CreatedAt: base},
		{ID: "n3", UserID: "bob", Type: models.NotifyTaskStarted, Message: "middle", CreatedAt: base.Add(-time.Hour), Read: true},
		{ID: "n4", UserID: "carol", Type: models.NotifyTeamCreated, Message: "other", CreatedAt: base},
	}
	require.NoError(t, st.SaveNotifications(context.Background(), ns))
}

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedNotifications(t, st)
	svc := NewNotificationService(st, zerolog.Nop())

	t.Run("newest first, own only", func(t *testing.T) {
		out, err := svc.List(ctx, "bob", false)
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "n2", out[0].ID)
		assert.Equal(t, "n3", out[1].ID)
		assert.Equal(t, "n1", out[2].ID)
	})

	t.Run("unread only", func(t *testing.T) {
		out, err := svc.List(ctx, "bob", true)
		require.NoError(t, err)
		require.Len(t, out, 2)
		for _, n := range out {
			assert.False(t, n.Read)
		}
	})

	t.Run("nobody", func(t *testing.T) {
		out, err := svc.List(ctx, "ghost", false)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedNotifications(t, st)
	svc := NewNotificationService(st, zerolog.Nop())
	bob := models.User{ID: "bob"}

	n, err := svc.MarkRead(ctx, bob, "n1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	all, err := st.Notifications(ctx)
	require.NoError(t, err)
	assert.True(t, all[0].Read, "flag persisted")

	t.Run("someone else's notification looks absent", func(t *testing.T) {
		_, err := svc.MarkRead(ctx, bob, "n4")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.MarkRead(ctx, bob, "nope")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	seedNotifications(t, st)
	svc := NewNotificationService(st, zerolog.Nop())
	bob := models.User{ID: "bob"}

	changed, err := svc.MarkAllRead(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 2, changed, "n3 was already read")

	out, err := svc.List(ctx, "bob", true)
	require.NoError(t, err)
	assert.Empty(t, out)

	// carol's stayed unread
	other, err := svc.List(ctx, "carol", true)
	require.NoError(t, err)
	assert.Len(t, other, 1)

	changed, err = svc.MarkAllRead(ctx, bob)
	require.NoError(t, err)
	assert.Zero(t, changed)
}
