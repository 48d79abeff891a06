package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diagnosis/movezy-backend/internal/domain"
	"github.com/diagnosis/movezy-backend/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BookingsRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	Find(ctx context.Context, f domain.BookingFilter) ([]domain.Document, error)
}

type BookingsRepoImpl struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewBookingsRepo(db *mongo.Database, timeout time.Duration) *BookingsRepoImpl {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &BookingsRepoImpl{coll: db.Collection(database.BookingsCollection), timeout: timeout}
}

func (r *BookingsRepoImpl) Create(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, rec.Fields())
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// FindByID returns nil when no booking has that id.
func (r *BookingsRepoImpl) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc domain.Document
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc, nil
}

func (r *BookingsRepoImpl) Find(ctx context.Context, f domain.BookingFilter) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bookingFilter(f))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	return decodeAll(ctx, cur)
}

func bookingFilter(f domain.BookingFilter) bson.D {
	filter := bson.D{}
	if f.Email != "" {
		filter = append(filter, bson.E{Key: "email", Value: f.Email})
	}
	if w := f.DeliveryWindow; w != nil {
		filter = append(filter, bson.E{Key: domain.RequestedDeliveryDateField, Value: bson.D{
			{Key: "$gte", Value: w.From},
			{Key: "$lte", Value: w.To},
		}})
	}
	return filter
}
