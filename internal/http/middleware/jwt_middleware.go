package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/diagnosis/movezy-backend/internal/http/response"
	"github.com/diagnosis/movezy-backend/pkg/auth"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

const (
	msgNoToken      = "Unauthorized access: No token"
	msgInvalidToken = "Unauthorized access: Invalid token"
)

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// RequireJWT admits requests carrying a valid token in the Authorization
// header. The token is the second whitespace-separated field of the header.
func RequireJWT(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				logger.WarnContext(r.Context(), "Request without token", "path", r.URL.Path)
				response.Unauthorized(w, msgNoToken)
				return
			}

			var raw string
			if fields := strings.Fields(authz); len(fields) > 1 {
				raw = fields[1]
			}
			claims, err := v.Verify(raw)
			if err != nil {
				logger.WarnContext(r.Context(), "Token rejected", "path", r.URL.Path, "error", err)
				response.Unauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			if email := claims.Email(); email != "" {
				ctx = context.WithValue(ctx, logger.UserEmailKey, email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the verified token payload, or nil outside RequireJWT.
func Claims(r *http.Request) auth.Claims {
	c, _ := r.Context().Value(CtxClaims).(auth.Claims)
	return c
}
