package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// Record is a client-supplied document on its way into the store. Fields
// keep the order the client sent them in; nested objects are bson.D and
// arrays are bson.A.
type Record struct {
	fields bson.D
}

func NewRecord(fields bson.D) *Record {
	if fields == nil {
		fields = bson.D{}
	}
	return &Record{fields: fields}
}

// Fields is the ordered document handed to the driver.
func (r *Record) Fields() bson.D {
	return r.fields
}

func (r *Record) Get(key string) (any, bool) {
	for _, e := range r.fields {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of key in place, or appends it when absent.
func (r *Record) Set(key string, value any) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, bson.E{Key: key, Value: value})
}

// GetString returns the string value stored under key, or "".
func (r *Record) GetString(key string) string {
	v, _ := r.Get(key)
	s, _ := v.(string)
	return s
}

// Map flattens the record into a Document, converting nested bson.D and
// bson.A values as well.
func (r *Record) Map() Document {
	return toDocument(r.fields)
}

func toDocument(d bson.D) Document {
	out := make(Document, len(d))
	for _, e := range d {
		out[e.Key] = plain(e.Value)
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case bson.D:
		return toDocument(x)
	case bson.A:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}
