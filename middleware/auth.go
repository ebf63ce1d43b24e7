package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/grievance-portal/userctx"
)

// Session keys for the authenticated identity
const (
	SessionRoleKey        = "role"
	SessionDisplayNameKey = "display_name"
	SessionRedirectKey    = "redirect_after_login"
)

// RequireRole gates a route group to a single role.
// Anonymous sessions and sessions holding the other role are redirected to
// /login rather than given a forbidden status.
func RequireRole(role userctx.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.GetSession(r)

			stored, ok := sess.Get(SessionRoleKey).(string)
			if !ok || userctx.Role(stored) != role {
				// Store the intended destination for redirect after login
				sess.Set(SessionRedirectKey, r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			// Add identity to request context for use in handlers
			ctx := userctx.SetRole(r.Context(), role)
			if name, ok := sess.Get(SessionDisplayNameKey).(string); ok {
				ctx = userctx.SetDisplayName(ctx, name)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
