package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
)

func TestPriorityDistribution(t *testing.T) {
	tasks := []models.Task{
		{Priority: models.PriorityHigh},
		{Priority: models.PriorityHigh},
		{Priority: models.PriorityLow},
	}
	out := PriorityDistribution(tasks)
	require.Len(t, out, len(models.Priorities), "every category present")
	assert.Equal(t, Bucket{Name: "low", Value: 1}, out[0])
	assert.Equal(t, Bucket{Name: "medium", Value: 0}, out[1])
	assert.Equal(t, Bucket{Name: "high", Value: 2}, out[2])
	assert.Equal(t, Bucket{Name: "urgent", Value: 0}, out[3])
	assert.Equal(t, Bucket{Name: "critical", Value: 0}, out[4])
}

func TestStatusDistributionEmpty(t *testing.T) {
	out := StatusDistribution(nil)
	require.Len(t, out, len(models.Statuses))
	for _, b := range out {
		assert.Zero(t, b.Value)
	}
}

func TestRoleDistribution(t *testing.T) {
	users := []models.User{
		{Role: models.RoleSuperuser},
		{Role: models.RoleUser},
		{Role: models.RoleUser},
	}
	out := RoleDistribution(users)
	require.Len(t, out, 3)
	assert.Equal(t, Bucket{Name: "superuser", Value: 1}, out[0])
	assert.Equal(t, Bucket{Name: "admin", Value: 0}, out[1])
	assert.Equal(t, Bucket{Name: "user", Value: 2}, out[2])
}
