package handlers

import (
	"context"
	"net/http"

	authmw "github.com/diagnosis/movezy-backend/internal/http/middleware"
	"github.com/diagnosis/movezy-backend/internal/service"
	"github.com/diagnosis/movezy-backend/pkg/auth"
	"github.com/diagnosis/movezy-backend/pkg/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const rootBanner = "MoveZy Backend Server is Running..."

type RouterConfig struct {
	Tokens   *auth.TokenService
	Users    service.UserService
	Bookings service.BookingService

	// Limiter guards POST /jwt and POST /users. Nil disables rate limiting.
	Limiter middleware.Limiter
	// ClientIPs keys the limiter. Nil keys by RemoteAddr and ignores forwarding headers.
	ClientIPs *middleware.IPResolver

	UsersListAdminOnly bool
	IsAdminEmail       func(email string) bool

	AllowedOrigins []string
	HealthCheck    func(ctx context.Context) error
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ServiceName("movezy-backend"))
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Health(cfg.HealthCheck))

	tokens := NewTokenHandler(cfg.Tokens)
	users := NewUsersHandler(cfg.Users)
	bookings := NewBookingsHandler(cfg.Bookings)
	requireJWT := authmw.RequireJWT(cfg.Tokens)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(rootBanner))
	})
	r.Handle("/metrics", middleware.MetricsHandler())

	r.With(rateLimit(cfg, "jwt")).Post("/jwt", tokens.issue)
	r.With(rateLimit(cfg, "users")).Post("/users", users.register)

	r.Group(func(r chi.Router) {
		if cfg.UsersListAdminOnly {
			r.Use(requireJWT, authmw.RequireAdmin(cfg.IsAdminEmail))
		}
		r.Get("/users", users.list)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireJWT)
		r.Get("/user/find", users.find)
		r.Post("/bookings", bookings.create)
		r.Get("/bookings", bookings.query)
	})

	return r
}

func rateLimit(cfg RouterConfig, name string) func(http.Handler) http.Handler {
	if cfg.Limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.RateLimit(cfg.Limiter, name, cfg.ClientIPs)
}
