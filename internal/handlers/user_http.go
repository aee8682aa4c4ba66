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

type UserHTTP struct {
	users *service.UserService
	auth  *service.AuthService
	store store.Store
}

func NewUserHTTP(users *service.UserService, auth *service.AuthService, st store.Store) *UserHTTP {
	return &UserHTTP{users: users, auth: auth, store: st}
}

// GET /api/users?role= lists users. Superusers see everyone, admins their
// own team.
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		all, err := h.store.Users(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		role := r.URL.Query().Get("role")

		items := make([]map[string]any, 0, len(all))
		for _, candidate := range all {
			if u.Role == models.RoleAdmin && candidate.TeamID != u.TeamID {
				continue
			}
			if role != "" && string(candidate.Role) != role {
				continue
			}
			items = append(items, candidate.Public())
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// GET /api/users/{id}. The router guards this with RequireSelfOrRoles.
func (h *UserHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := actor(w, r, h.auth); !ok {
			return
		}
		id := chi.URLParam(r, "id")
		u, err := h.auth.UserByID(r.Context(), id)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, u.Public())
	}
}

// POST /api/users
func (h *UserHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		var in service.CreateUserInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		created, err := h.users.Create(r.Context(), u, in)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, created.Public())
	}
}
