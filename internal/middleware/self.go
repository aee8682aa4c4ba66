package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskdesk/internal/utils"
)

// RequireSelfOrRoles allows if {id} matches the context user id or the
// current role is in the given list.
func RequireSelfOrRoles(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxUID, _ := utils.GetString(r.Context(), CtxUserID)
			ctxRole, _ := utils.GetString(r.Context(), CtxRole)

			if _, ok := roleSet[ctxRole]; ok {
				next.ServeHTTP(w, r)
				return
			}
			if ctxUID != "" && chi.URLParam(r, "id") == ctxUID {
				next.ServeHTTP(w, r)
				return
			}
			utils.Error(w, http.StatusForbidden, "forbidden")
		})
	}
}
