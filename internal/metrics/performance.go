package metrics

import (
	"sort"

	"taskdesk/internal/models"
)

// MemberStat is one row of the per-member leaderboard.
type MemberStat struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Completed   int    `json:"completed"`
	InProgress  int    `json:"inProgress"`
	Total       int    `json:"total"`
	Performance int    `json:"performance"`
}

// MemberPerformance groups tasks by assignee and computes a completion-rate
// leaderboard, sorted descending by rate. Ties keep the members' original
// order. Every listed member appears, including those with no tasks.
func MemberPerformance(members []models.User, tasks []models.Task) []MemberStat {
	stats := make([]MemberStat, 0, len(members))
	for _, m := range members {
		st := MemberStat{UserID: m.ID, Username: m.Username}
		for _, t := range tasks {
			if t.AssignedTo != m.ID {
				continue
			}
			st.Total++
			switch {
			case t.Status.Terminal():
				st.Completed++
			case t.Status == models.StatusInProgress:
				st.InProgress++
			}
		}
		st.Performance = CompletionRate(st.Completed, st.Total)
		stats = append(stats, st)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Performance > stats[j].Performance })
	return stats
}

// TeamStat is one row of the per-team leaderboard.
type TeamStat struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Completed   int    `json:"completed"`
	InProgress  int    `json:"inProgress"`
	Open        int    `json:"open"`
	Total       int    `json:"total"`
	Members     int    `json:"members"`
	Performance int    `json:"performance"`
}

// TeamPerformance groups tasks by team, same ordering contract as
// MemberPerformance.
func TeamPerformance(teams []models.Team, tasks []models.Task) []TeamStat {
	stats := make([]TeamStat, 0, len(teams))
	for _, team := range teams {
		st := TeamStat{TeamID: team.ID, Name: team.Name, Members: len(team.MemberIDs)}
		for _, t := range tasks {
			if t.TeamID != team.ID {
				continue
			}
			st.Total++
			switch {
			case t.Status.Terminal():
				st.Completed++
			case t.Status == models.StatusInProgress:
				st.InProgress++
			case t.Status == models.StatusOpen:
				st.Open++
			}
		}
		st.Performance = CompletionRate(st.Completed, st.Total)
		stats = append(stats, st)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Performance > stats[j].Performance })
	return stats
}
