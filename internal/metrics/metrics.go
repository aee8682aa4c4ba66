// Package metrics derives dashboard aggregates from the entity collections.
// Every function is pure: it takes the (pre-scoped) collections plus an
// explicit "now" snapshot and returns fully populated results, so an empty
// input can never produce a partial or nil aggregate.
package metrics

import (
	"math"
	"time"

	"taskdesk/internal/models"
)

// CompletionRate is round(100 * completed / total), 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// IsOverdue reports a task whose due date has passed while it still sits in
// a non-terminal status. Callers pass one shared now per computation pass.
func IsOverdue(t models.Task, now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Status.Terminal()
}

// Summary is the per-scope task rollup shown on every dashboard.
type Summary struct {
	Total          int `json:"total"`
	Open           int `json:"open"`
	InProgress     int `json:"inProgress"`
	Pending        int `json:"pending"`
	Completed      int `json:"completed"`
	Resolved       int `json:"resolved"`
	Closed         int `json:"closed"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"`
}

// Summarize rolls tasks up by status. The completion rate counts every
// terminal status as finished work.
func Summarize(tasks []models.Task, now time.Time) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusOpen:
			s.Open++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusPending:
			s.Pending++
		case models.StatusCompleted:
			s.Completed++
		case models.StatusResolved:
			s.Resolved++
		case models.StatusClosed:
			s.Closed++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	s.CompletionRate = CompletionRate(s.Completed+s.Resolved+s.Closed, s.Total)
	return s
}

// System is the superuser-wide rollup across all collections.
type System struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"` // everyone below superuser
	TotalTeams     int `json:"totalTeams"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	InProgress     int `json:"inProgressTasks"`
	OverdueTasks   int `json:"overdueTasks"`
	CompletionRate int `json:"completionRate"`
}

func SystemSummary(users []models.User, teams []models.Team, tasks []models.Task, now time.Time) System {
	ts := Summarize(tasks, now)
	sys := System{
		TotalUsers:     len(users),
		TotalTeams:     len(teams),
		TotalTasks:     ts.Total,
		CompletedTasks: ts.Completed + ts.Resolved + ts.Closed,
		InProgress:     ts.InProgress,
		OverdueTasks:   ts.Overdue,
		CompletionRate: ts.CompletionRate,
	}
	for _, u := range users {
		if u.Role != models.RoleSuperuser {
			sys.ActiveUsers++
		}
	}
	return sys
}
