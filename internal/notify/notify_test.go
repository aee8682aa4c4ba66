package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
)

func TestNew(t *testing.T) {
	before := time.Now()
	n := New("u1", models.NotifyTaskAssigned, "New task assigned", "You have been assigned a new task: deploy")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, models.NotifyTaskAssigned, n.Type)
	assert.False(t, n.Read)
	assert.Equal(t, models.PriorityMedium, n.Priority)
	assert.False(t, n.CreatedAt.Before(before))
	assert.False(t, n.CreatedAt.After(time.Now()))
}

func TestOptions(t *testing.T) {
	n := New("u1", models.NotifyTaskCompleted, "Task completed", "done",
		WithTask("t9"), WithTeam("team3"), WithPriority(models.PriorityLow))
	assert.Equal(t, "t9", n.TaskID)
	assert.Equal(t, "team3", n.TeamID)
	assert.Equal(t, models.PriorityLow, n.Priority)
}

func TestWithPriorityBounds(t *testing.T) {
	for _, p := range []models.Priority{models.PriorityUrgent, models.PriorityCritical} {
		n := New("u1", models.NotifySystemAlert, "alert", "x", WithPriority(p))
		assert.Equal(t, models.PriorityHigh, n.Priority, p)
	}
	n := New("u1", models.NotifySystemAlert, "alert", "x", WithPriority(models.PriorityHigh))
	assert.Equal(t, models.PriorityHigh, n.Priority)
}

func TestFanout(t *testing.T) {
	batch := Fanout([]string{"a", "b", "c"}, models.NotifyTeamCreated, "New team", "msg", WithTeam("t1"))
	require.Len(t, batch, 3)

	ids := map[string]bool{}
	for i, n := range batch {
		assert.Equal(t, []string{"a", "b", "c"}[i], n.UserID)
		assert.Equal(t, "t1", n.TeamID)
		assert.False(t, ids[n.ID], "ids must be unique")
		ids[n.ID] = true
	}

	assert.Empty(t, Fanout(nil, models.NotifyTeamCreated, "x", "y"))
}
