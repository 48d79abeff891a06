package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diagnosis/movezy-backend/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var errStore = errors.New("connection reset")

// memUsers mimics the users collection with its unique email index.
type memUsers struct {
	mu    sync.Mutex
	docs  []domain.Document
	order [][]string
	fail  bool
}

func keys(rec *domain.Record) []string {
	out := []string{}
	for _, e := range rec.Fields() {
		out = append(out, e.Key)
	}
	return out
}

func (m *memUsers) Create(_ context.Context, rec *domain.Record) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	m.order = append(m.order, keys(rec))
	doc := rec.Map()
	for _, d := range m.docs {
		if d["email"] == doc["email"] {
			return nil, domain.ErrUserExists
		}
	}
	id := bson.NewObjectID()
	stored := domain.Document{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	m.docs = append(m.docs, stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *memUsers) List(context.Context) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	return append([]domain.Document{}, m.docs...), nil
}

func (m *memUsers) FindOne(_ context.Context, f domain.UserFilter) (domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	if f.ID != "" {
		if _, err := bson.ObjectIDFromHex(f.ID); err != nil {
			return nil, domain.ErrInvalidID
		}
	}
	for _, d := range m.docs {
		if f.ID != "" && d["_id"].(bson.ObjectID).Hex() != f.ID {
			continue
		}
		if f.Email != "" && d["email"] != f.Email {
			continue
		}
		return d, nil
	}
	return nil, nil
}

type memBookings struct {
	mu   sync.Mutex
	docs []domain.Document
	fail bool
}

func (m *memBookings) Create(_ context.Context, rec *domain.Record) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	id := bson.NewObjectID()
	doc := rec.Map()
	doc["_id"] = id
	m.docs = append(m.docs, doc)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *memBookings) FindByID(_ context.Context, id string) (domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	for _, d := range m.docs {
		if d["_id"] == oid {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memBookings) Find(_ context.Context, f domain.BookingFilter) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	out := []domain.Document{}
	for _, d := range m.docs {
		if f.Email != "" && d["email"] != f.Email {
			continue
		}
		if w := f.DeliveryWindow; w != nil {
			at, ok := d[domain.RequestedDeliveryDateField].(time.Time)
			if !ok || at.Before(w.From) || at.After(w.To) {
				continue
			}
		}
		out = append(out, d)
	}
	return out, nil
}
