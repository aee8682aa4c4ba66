package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskdesk/internal/models"
	"taskdesk/internal/service"
	"taskdesk/internal/store"
	"taskdesk/internal/utils"
)

type TeamHTTP struct {
	teams *service.TeamService
	auth  *service.AuthService
	store store.Store
}

func NewTeamHTTP(teams *service.TeamService, auth *service.AuthService, st store.Store) *TeamHTTP {
	return &TeamHTTP{teams: teams, auth: auth, store: st}
}

// GET /api/teams lists teams. Superusers see every team, everyone else
// their own.
func (h *TeamHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		all, err := h.store.Teams(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if u.Role == models.RoleSuperuser {
			utils.JSON(w, http.StatusOK, map[string]any{"items": all, "total": len(all)})
			return
		}
		items := make([]models.Team, 0, 1)
		for _, t := range all {
			if t.ID == u.TeamID {
				items = append(items, t)
			}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// GET /api/teams/{id}
func (h *TeamHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")
		if u.Role != models.RoleSuperuser && u.TeamID != id {
			utils.Error(w, http.StatusNotFound, "not found")
			return
		}
		all, err := h.store.Teams(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		for _, t := range all {
			if t.ID == id {
				utils.JSON(w, http.StatusOK, t)
				return
			}
		}
		utils.Error(w, http.StatusNotFound, "not found")
	}
}

// POST /api/teams
func (h *TeamHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		var in service.CreateTeamInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := h.teams.Create(r.Context(), u, in)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, t)
	}
}
