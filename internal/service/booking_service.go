package service

import (
	"context"
	"time"

	"github.com/diagnosis/movezy-backend/internal/domain"
	mongorepo "github.com/diagnosis/movezy-backend/internal/repo/mongodb"
	"github.com/diagnosis/movezy-backend/pkg/events"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

type BookingService interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	Query(ctx context.Context, f domain.BookingFilter) ([]domain.Document, error)
}

type bookingService struct {
	bookings mongorepo.BookingsRepo
	eventBus events.Publisher
	now      func() time.Time
}

func NewBookingService(bookings mongorepo.BookingsRepo, eventBus events.Publisher) BookingService {
	return &bookingService{bookings: bookings, eventBus: eventBus, now: time.Now}
}

// Create normalizes requestedDeliveryDate and stores the booking.
func (s *bookingService) Create(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error) {
	if err := domain.NormalizeBooking(rec); err != nil {
		return nil, err
	}

	res, err := s.bookings.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	bookingsCreated.Inc()

	event := events.BookingCreatedEvent{
		BookingID: hexID(res.InsertedID),
		Email:     rec.GetString("email"),
		CreatedAt: s.now().UTC(),
	}
	if v, _ := rec.Get(domain.RequestedDeliveryDateField); v != nil {
		if t, ok := v.(time.Time); ok {
			event.RequestedDeliveryDate = &t
		}
	}
	if err := s.eventBus.Publish(ctx, events.BookingCreated, event); err != nil {
		eventPublishFailures.WithLabelValues(events.BookingCreated).Inc()
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", event.BookingID)
	}

	return res, nil
}

// Get returns nil, nil when the booking does not exist.
func (s *bookingService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *bookingService) Query(ctx context.Context, f domain.BookingFilter) ([]domain.Document, error) {
	return s.bookings.Find(ctx, f)
}
