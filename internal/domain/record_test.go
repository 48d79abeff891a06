package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRecord_GetSet(t *testing.T) {
	rec := NewRecord(bson.D{{Key: "email", Value: "a@x.com"}, {Key: "n", Value: int64(3)}})

	assert.Equal(t, "a@x.com", rec.GetString("email"))
	assert.Empty(t, rec.GetString("n"))
	assert.Empty(t, rec.GetString("missing"))

	rec.Set("email", "b@x.com")
	rec.Set("city", "Oslo")
	assert.Equal(t, bson.D{
		{Key: "email", Value: "b@x.com"},
		{Key: "n", Value: int64(3)},
		{Key: "city", Value: "Oslo"},
	}, rec.Fields())
}

func TestRecord_NilFields(t *testing.T) {
	rec := NewRecord(nil)
	assert.NotNil(t, rec.Fields())
	assert.Empty(t, rec.Map())
}

func TestRecord_Map(t *testing.T) {
	rec := NewRecord(bson.D{
		{Key: "email", Value: "a@x.com"},
		{Key: "address", Value: bson.D{{Key: "city", Value: "Oslo"}}},
		{Key: "items", Value: bson.A{bson.D{{Key: "name", Value: "sofa"}}, "box"}},
	})

	assert.Equal(t, Document{
		"email":   "a@x.com",
		"address": Document{"city": "Oslo"},
		"items":   []any{Document{"name": "sofa"}, "box"},
	}, rec.Map())
}
