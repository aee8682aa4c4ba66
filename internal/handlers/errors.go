package handlers

import (
	"errors"
	"net/http"

	"taskdesk/internal/middleware"
	"taskdesk/internal/models"
	"taskdesk/internal/service"
	"taskdesk/internal/utils"
)

// serviceError maps workflow errors onto HTTP statuses: validation → 400,
// missing entity → 404, bad credentials → 401, anything else → 500.
func serviceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		utils.Error(w, http.StatusBadRequest, ve.Error())
		return
	}
	var nfe *service.NotFoundError
	if errors.As(err, &nfe) {
		utils.Error(w, http.StatusNotFound, nfe.Error())
		return
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	utils.Error(w, http.StatusInternalServerError, err.Error())
}

// actor resolves the authenticated request to its current user record.
// Writes the response itself on failure.
func actor(w http.ResponseWriter, r *http.Request, auth *service.AuthService) (models.User, bool) {
	uid, ok := utils.GetString(r.Context(), middleware.CtxUserID)
	if !ok || uid == "" {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return models.User{}, false
	}
	u, err := auth.UserByID(r.Context(), uid)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "account no longer exists")
		return models.User{}, false
	}
	return *u, true
}
