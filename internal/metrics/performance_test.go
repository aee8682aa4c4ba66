package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
)

func TestMemberPerformance(t *testing.T) {
	members := []models.User{
		{ID: "a", Username: "alice"},
		{ID: "b", Username: "bob"},
		{ID: "c", Username: "carol"},
	}
	tasks := []models.Task{
		{AssignedTo: "a", Status: models.StatusCompleted},
		{AssignedTo: "a", Status: models.StatusResolved},
		{AssignedTo: "b", Status: models.StatusCompleted},
		{AssignedTo: "b", Status: models.StatusInProgress},
	}

	stats := MemberPerformance(members, tasks)
	require.Len(t, stats, 3, "every member appears, tasks or not")

	assert.Equal(t, "alice", stats[0].Username)
	assert.Equal(t, 100, stats[0].Performance)
	assert.Equal(t, 2, stats[0].Completed)

	assert.Equal(t, "bob", stats[1].Username)
	assert.Equal(t, 50, stats[1].Performance)
	assert.Equal(t, 1, stats[1].InProgress)

	assert.Equal(t, "carol", stats[2].Username)
	assert.Equal(t, 0, stats[2].Total)
	assert.Equal(t, 0, stats[2].Performance)
}

func TestMemberPerformanceStableTies(t *testing.T) {
	members := []models.User{
		{ID: "a", Username: "alice"},
		{ID: "b", Username: "bob"},
	}
	// both at 0%
	stats := MemberPerformance(members, nil)
	require.Len(t, stats, 2)
	assert.Equal(t, "alice", stats[0].Username)
	assert.Equal(t, "bob", stats[1].Username)
}

func TestTeamPerformance(t *testing.T) {
	teams := []models.Team{
		{ID: "t1", Name: "Platform", MemberIDs: []string{"a", "b"}},
		{ID: "t2", Name: "Support", MemberIDs: []string{"c"}},
	}
	tasks := []models.Task{
		{TeamID: "t1", Status: models.StatusOpen},
		{TeamID: "t1", Status: models.StatusCompleted},
		{TeamID: "t2", Status: models.StatusClosed},
	}

	stats := TeamPerformance(teams, tasks)
	require.Len(t, stats, 2)

	assert.Equal(t, "Support", stats[0].Name)
	assert.Equal(t, 100, stats[0].Performance)
	assert.Equal(t, 1, stats[0].Members)

	assert.Equal(t, "Platform", stats[1].Name)
	assert.Equal(t, 50, stats[1].Performance)
	assert.Equal(t, 1, stats[1].Open)
	assert.Equal(t, 2, stats[1].Members)
}
