package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/diagnosis/movezy-backend/internal/http/handlers"
	mongorepo "github.com/diagnosis/movezy-backend/internal/repo/mongodb"
	"github.com/diagnosis/movezy-backend/internal/service"
	"github.com/diagnosis/movezy-backend/pkg/auth"
	"github.com/diagnosis/movezy-backend/pkg/config"
	"github.com/diagnosis/movezy-backend/pkg/database"
	"github.com/diagnosis/movezy-backend/pkg/events"
	"github.com/diagnosis/movezy-backend/pkg/logger"
	mw "github.com/diagnosis/movezy-backend/pkg/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		logger.Error("MoveZy backend stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(os.Stdout, cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	client, err := database.Connect(ctx, cfg.Database.MongoURI(), cfg.Database.ConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()
	db := client.Database(cfg.Database.Name)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	logger.Info("Connected to MongoDB", "database", cfg.Database.Name)

	// Connect to event bus
	var eventBus events.Publisher = events.NopPublisher{}
	if cfg.NATS.URL != "" {
		nb, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			return err
		}
		eventBus = nb
	}
	defer eventBus.Close()

	// Rate limiting
	var limiter mw.Limiter = mw.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		limiter = mw.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	clientIPs, err := mw.NewIPResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}

	// Initialize repositories and services
	usersRepo := mongorepo.NewUsersRepo(db, cfg.Database.QueryTimeout)
	bookingsRepo := mongorepo.NewBookingsRepo(db, cfg.Database.QueryTimeout)

	router := handlers.NewRouter(handlers.RouterConfig{
		Tokens:             auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
		Users:              service.NewUserService(usersRepo, eventBus),
		Bookings:           service.NewBookingService(bookingsRepo, eventBus),
		Limiter:            limiter,
		ClientIPs:          clientIPs,
		UsersListAdminOnly: cfg.Auth.UsersListAdmin,
		IsAdminEmail:       cfg.Auth.IsAdminEmail,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		HealthCheck: func(ctx context.Context) error {
			return database.Ping(ctx, client, cfg.Database.QueryTimeout)
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down MoveZy backend...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
