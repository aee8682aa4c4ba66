package handlers

import (
	"net/http"
	"time"

	"taskdesk/internal/metrics"
	"taskdesk/internal/models"
	"taskdesk/internal/service"
	"taskdesk/internal/store"
	"taskdesk/internal/utils"
)

// ReportHTTP serves the dashboard aggregates. Every endpoint loads the
// collections, narrows tasks to the actor's scope and hands the rest to the
// pure metrics package.
type ReportHTTP struct {
	auth  *service.AuthService
	store store.Store
	now   func() time.Time
}

func NewReportHTTP(auth *service.AuthService, st store.Store) *ReportHTTP {
	return &ReportHTTP{auth: auth, store: st, now: time.Now}
}

func (h *ReportHTTP) scopedTasks(w http.ResponseWriter, r *http.Request) (models.User, []models.Task, bool) {
	u, ok := actor(w, r, h.auth)
	if !ok {
		return models.User{}, nil, false
	}
	tasks, err := h.store.Tasks(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return models.User{}, nil, false
	}
	return u, metrics.Visible(tasks, u), true
}

// GET /api/reports/summary
func (h *ReportHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, tasks, ok := h.scopedTasks(w, r)
		if !ok {
			return
		}
		utils.JSON(w, http.StatusOK, metrics.Summarize(tasks, h.now()))
	}
}

// GET /api/reports/system, superuser only (enforced in the router).
func (h *ReportHTTP) System() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := actor(w, r, h.auth); !ok {
			return
		}
		users, err := h.store.Users(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		teams, err := h.store.Teams(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		tasks, err := h.store.Tasks(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, metrics.SystemSummary(users, teams, tasks, h.now()))
	}
}

// GET /api/reports/team-performance
func (h *ReportHTTP) TeamPerformance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, tasks, ok := h.scopedTasks(w, r)
		if !ok {
			return
		}
		teams, err := h.store.Teams(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if u.Role == models.RoleAdmin {
			own := make([]models.Team, 0, 1)
			for _, t := range teams {
				if t.ID == u.TeamID {
					own = append(own, t)
				}
			}
			teams = own
		}
		utils.JSON(w, http.StatusOK, metrics.TeamPerformance(teams, tasks))
	}
}

// GET /api/reports/member-performance
func (h *ReportHTTP) MemberPerformance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, tasks, ok := h.scopedTasks(w, r)
		if !ok {
			return
		}
		users, err := h.store.Users(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		members := make([]models.User, 0, len(users))
		for _, m := range users {
			if m.Role == models.RoleSuperuser {
				continue
			}
			if u.Role == models.RoleAdmin && m.TeamID != u.TeamID {
				continue
			}
			if u.Role == models.RoleUser && m.ID != u.ID {
				continue
			}
			members = append(members, m)
		}
		utils.JSON(w, http.StatusOK, metrics.MemberPerformance(members, tasks))
	}
}

// GET /api/reports/trend?days=7
func (h *ReportHTTP) Trend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, tasks, ok := h.scopedTasks(w, r)
		if !ok {
			return
		}
		days := utils.QueryInt(r.URL.Query(), "days", 7)
		if days < 1 || days > 90 {
			utils.Error(w, http.StatusBadRequest, "days must be between 1 and 90")
			return
		}
		utils.JSON(w, http.StatusOK, metrics.Trend(tasks, h.now(), days))
	}
}

// GET /api/reports/monthly
func (h *ReportHTTP) Monthly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, tasks, ok := h.scopedTasks(w, r)
		if !ok {
			return
		}
		utils.JSON(w, http.StatusOK, metrics.Monthly(tasks))
	}
}

// GET /api/reports/distribution
func (h *ReportHTTP) Distribution() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, tasks, ok := h.scopedTasks(w, r)
		if !ok {
			return
		}
		out := map[string]any{
			"priority": metrics.PriorityDistribution(tasks),
			"status":   metrics.StatusDistribution(tasks),
		}
		if u.Role == models.RoleSuperuser {
			users, err := h.store.Users(r.Context())
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			out["roles"] = metrics.RoleDistribution(users)
		}
		utils.JSON(w, http.StatusOK, out)
	}
}
