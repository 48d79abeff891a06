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

const defaultQueryTimeout = 3 * time.Second

type UsersRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	FindOne(ctx context.Context, f domain.UserFilter) (domain.Document, error)
}

type UsersRepoImpl struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewUsersRepo(db *mongo.Database, timeout time.Duration) *UsersRepoImpl {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &UsersRepoImpl{coll: db.Collection(database.UsersCollection), timeout: timeout}
}

// Create inserts rec with its field order intact. A clash on the unique email index yields domain.ErrUserExists.
func (r *UsersRepoImpl) Create(ctx context.Context, rec *domain.Record) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, rec.Fields())
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *UsersRepoImpl) List(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return decodeAll(ctx, cur)
}

// FindOne returns the first user matching f, or nil when nothing matches.
func (r *UsersRepoImpl) FindOne(ctx context.Context, f domain.UserFilter) (domain.Document, error) {
	filter, err := userFilter(f)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc domain.Document
	err = r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc, nil
}

func userFilter(f domain.UserFilter) (bson.D, error) {
	filter := bson.D{}
	if f.ID != "" {
		oid, err := parseID(f.ID)
		if err != nil {
			return nil, err
		}
		filter = append(filter, bson.E{Key: "_id", Value: oid})
	}
	if f.Email != "" {
		filter = append(filter, bson.E{Key: "email", Value: f.Email})
	}
	return filter, nil
}

func parseID(hex string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, hex)
	}
	return oid, nil
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]domain.Document, error) {
	defer cur.Close(ctx)

	docs := make([]domain.Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}
