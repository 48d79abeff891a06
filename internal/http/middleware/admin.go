package middleware

import (
	"net/http"

	"github.com/diagnosis/movezy-backend/internal/http/response"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

// RequireAdmin must run after RequireJWT. A caller is an admin when the
// role claim is "admin" or isAdminEmail accepts the email claim.
func RequireAdmin(isAdminEmail func(email string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := Claims(r)
			if claims == nil {
				response.Unauthorized(w, msgNoToken)
				return
			}

			if claims.Role() != "admin" && (isAdminEmail == nil || !isAdminEmail(claims.Email())) {
				logger.WarnContext(r.Context(), "Admin access denied", "path", r.URL.Path)
				response.Forbidden(w, "Forbidden: admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
