package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskdesk/internal/service"
	"taskdesk/internal/utils"
)

type NotificationHTTP struct {
	notifications *service.NotificationService
	auth          *service.AuthService
}

func NewNotificationHTTP(notifications *service.NotificationService, auth *service.AuthService) *NotificationHTTP {
	return &NotificationHTTP{notifications: notifications, auth: auth}
}

// GET /api/notifications?unread=true
func (h *NotificationHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		unread := utils.QueryBool(r.URL.Query(), "unread", false)
		items, err := h.notifications.List(r.Context(), u.ID, unread)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// POST /api/notifications/{id}/read
func (h *NotificationHTTP) MarkRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		n, err := h.notifications.MarkRead(r.Context(), u, chi.URLParam(r, "id"))
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, n)
	}
}

// POST /api/notifications/read-all
func (h *NotificationHTTP) MarkAllRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := actor(w, r, h.auth)
		if !ok {
			return
		}
		changed, err := h.notifications.MarkAllRead(r.Context(), u)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"updated": changed})
	}
}
