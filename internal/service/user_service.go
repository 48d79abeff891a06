package service

import (
	"context"
	"errors"
	"time"

	"github.com/diagnosis/movezy-backend/internal/domain"
	mongorepo "github.com/diagnosis/movezy-backend/internal/repo/mongodb"
	"github.com/diagnosis/movezy-backend/pkg/events"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

type UserService interface {
	Register(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	Find(ctx context.Context, f domain.UserFilter) (domain.Document, error)
}

type userService struct {
	users    mongorepo.UsersRepo
	eventBus events.Publisher
	now      func() time.Time
}

func NewUserService(users mongorepo.UsersRepo, eventBus events.Publisher) UserService {
	return &userService{users: users, eventBus: eventBus, now: time.Now}
}

// Register stores rec verbatim. An existing email yields domain.ErrUserExists and no write.
func (s *userService) Register(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error) {
	res, err := s.users.Create(ctx, rec)
	if errors.Is(err, domain.ErrUserExists) {
		userRegistrations.WithLabelValues("exists").Inc()
		logger.InfoContext(ctx, "Registration for existing user ignored", "email", rec.GetString("email"))
		return nil, err
	}
	if err != nil {
		userRegistrations.WithLabelValues("error").Inc()
		return nil, err
	}
	userRegistrations.WithLabelValues("created").Inc()

	event := events.UserRegisteredEvent{
		UserID:       hexID(res.InsertedID),
		Email:        rec.GetString("email"),
		RegisteredAt: s.now().UTC(),
	}
	if err := s.eventBus.Publish(ctx, events.UserRegistered, event); err != nil {
		eventPublishFailures.WithLabelValues(events.UserRegistered).Inc()
		logger.ErrorContext(ctx, "Failed to publish user registered event", "error", err, "user_id", event.UserID)
	}

	return res, nil
}

func (s *userService) List(ctx context.Context) ([]domain.Document, error) {
	return s.users.List(ctx)
}

// Find returns nil, nil when no user matches.
func (s *userService) Find(ctx context.Context, f domain.UserFilter) (domain.Document, error) {
	if f.IsEmpty() {
		return nil, errors.New("user filter needs an id or an email")
	}
	return s.users.FindOne(ctx, f)
}
