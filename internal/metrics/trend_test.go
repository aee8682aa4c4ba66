package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/models"
)

func TestTrend(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("dense zero-filled window", func(t *testing.T) {
		points := Trend(nil, now, 7)
		require.Len(t, points, 7)
		assert.Equal(t, "2026-03-09", points[0].Date)
		assert.Equal(t, "2026-03-15", points[6].Date)
		assert.Equal(t, "Sun", points[6].Weekday)
		for _, p := range points {
			assert.Zero(t, p.Created)
			assert.Zero(t, p.Completed)
		}
	})

	t.Run("activity lands on its day", func(t *testing.T) {
		done := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		tasks := []models.Task{
			{CreatedAt: time.Date(2026, 3, 12, 23, 59, 0, 0, time.UTC)},
			{CreatedAt: time.Date(2026, 3, 12, 0, 1, 0, 0, time.UTC)},
			{CreatedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), CompletedAt: &done},
		}
		points := Trend(tasks, now, 7)
		require.Len(t, points, 7)
		assert.Equal(t, 2, points[3].Created, "both the 12th's tasks")
		assert.Equal(t, 1, points[1].Created)
		assert.Equal(t, 1, points[5].Completed)
	})

	t.Run("outside the window", func(t *testing.T) {
		tasks := []models.Task{{CreatedAt: now.AddDate(0, 0, -30)}}
		for _, p := range Trend(tasks, now, 7) {
			assert.Zero(t, p.Created)
		}
	})

	t.Run("non-positive days", func(t *testing.T) {
		assert.Empty(t, Trend(nil, now, 0))
	})
}

func TestMonthly(t *testing.T) {
	t.Run("empty input yields empty non-nil series", func(t *testing.T) {
		out := Monthly(nil)
		require.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("months sorted with per-month rate", func(t *testing.T) {
		tasks := []models.Task{
			{CreatedAt: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), Status: models.StatusCompleted},
			{CreatedAt: time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC), Status: models.StatusOpen},
			{CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Status: models.StatusClosed},
		}
		out := Monthly(tasks)
		require.Len(t, out, 2)
		assert.Equal(t, "2026-01", out[0].Month)
		assert.Equal(t, 100, out[0].Performance)
		assert.Equal(t, "2026-02", out[1].Month)
		assert.Equal(t, 50, out[1].Performance)
		assert.Equal(t, 2, out[1].Total)
	})
}
