package metrics

import (
	"sort"
	"time"

	"taskdesk/internal/models"
)

// TrendPoint is one calendar day of activity.
type TrendPoint struct {
	Date      string `json:"date"` // 2006-01-02, local time zone
	Weekday   string `json:"weekday"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// Trend buckets tasks by local calendar day over the trailing window ending
// today. The series is dense: exactly days entries, zero-filled for days
// with no activity.
func Trend(tasks []models.Task, now time.Time, days int) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]TrendPoint, days)
	index := make(map[string]int, days)
	for i := range points {
		day := today.AddDate(0, 0, -(days - 1 - i))
		key := day.Format("2006-01-02")
		points[i] = TrendPoint{Date: key, Weekday: day.Format("Mon")}
		index[key] = i
	}

	for _, t := range tasks {
		if i, ok := index[t.CreatedAt.In(now.Location()).Format("2006-01-02")]; ok {
			points[i].Created++
		}
		if t.CompletedAt != nil {
			if i, ok := index[t.CompletedAt.In(now.Location()).Format("2006-01-02")]; ok {
				points[i].Completed++
			}
		}
	}
	return points
}

// MonthlyPoint is one calendar month of completion performance.
type MonthlyPoint struct {
	Month       string `json:"month"` // 2006-01
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	Performance int    `json:"performance"`
}

// Monthly buckets tasks by creation month, oldest first. Only months with
// activity appear; an empty input yields an empty, non-nil series.
func Monthly(tasks []models.Task) []MonthlyPoint {
	type counts struct{ completed, total int }
	byMonth := map[string]*counts{}
	for _, t := range tasks {
		key := t.CreatedAt.Format("2006-01")
		c := byMonth[key]
		if c == nil {
			c = &counts{}
			byMonth[key] = c
		}
		c.total++
		if t.Status.Terminal() {
			c.completed++
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyPoint, 0, len(months))
	for _, m := range months {
		c := byMonth[m]
		out = append(out, MonthlyPoint{
			Month:       m,
			Completed:   c.completed,
			Total:       c.total,
			Performance: CompletionRate(c.completed, c.total),
		})
	}
	return out
}
