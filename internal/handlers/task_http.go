package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"taskdesk/internal/metrics"
	"taskdesk/internal/models"
	"taskdesk/internal/service"
	"taskdesk/internal/store"
	"taskdesk/internal/utils"
)

// TaskHTTP wires the task workflows and role-scoped listing to HTTP.
type TaskHTTP struct {
	tasks *service.TaskService
	auth  *service.AuthService
	store store.Store
}

func NewTaskHTTP(tasks *service.TaskService, auth *service.AuthService, st store.Store) *TaskHTTP {
	return &TaskHTTP{tasks: tasks, auth: auth, store: st}
}

// GET /api/tasks?q=&status=&priority=&limit=&offset=
// Results are scoped through the actor's role before filtering.
func (h *TaskHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}

		all, err := h.store.Tasks(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		qv := r.URL.Query()
		q := strings.ToLower(strings.TrimSpace(qv.Get("q")))
		status := qv.Get("status")
		priority := qv.Get("priority")
		limit := utils.QueryInt(qv, "limit", 50)
		if limit <= 0 {
			limit = 50
		}
		offset := utils.QueryInt(qv, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		visible := metrics.Visible(all, u)
		items := make([]models.Task, 0, len(visible))
		for _, t := range visible {
			if status != "" && string(t.Status) != status {
				continue
			}
			if priority != "" && string(t.Priority) != priority {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(t.Title), q) &&
				!strings.Contains(strings.ToLower(t.Description), q) {
				continue
			}
			items = append(items, t)
		}

		total := len(items)
		if offset > total {
			offset = total
		}
		end := offset + limit
		if end > total {
			end = total
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items[offset:end], "total": total})
	}
}

// GET /api/tasks/{id}
func (h *TaskHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		id := chi.URLParam(r, "id")

		all, err := h.store.Tasks(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		keep := metrics.ScopeFilter(u)
		for _, t := range all {
			if t.ID == id && keep(t) {
				utils.JSON(w, http.StatusOK, t)
				return
			}
		}
		// Out-of-scope tasks look absent rather than forbidden.
		utils.Error(w, http.StatusNotFound, "not found")
	}
}

// POST /api/tasks
func (h *TaskHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		var in service.CreateTaskInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := h.tasks.Create(r.Context(), u, in)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, t)
	}
}

// PATCH /api/tasks/{id}
func (h *TaskHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		var in service.UpdateTaskInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := h.tasks.Update(r.Context(), u, chi.URLParam(r, "id"), in)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// POST /api/tasks/{id}/reassign
func (h *TaskHTTP) Reassign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		var in struct {
			AssignedTo string `json:"assignedTo"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := h.tasks.Reassign(r.Context(), u, chi.URLParam(r, "id"), in.AssignedTo)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// Transition serves the status verbs: start, complete, resolve, close,
// hold, resume.
func (h *TaskHTTP) Transition(step func(context.Context, models.User, string) (*models.Task, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		t, err := step(r.Context(), u, chi.URLParam(r, "id"))
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}
