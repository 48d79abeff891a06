package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diagnosis/movezy-backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeObject reads a JSON object body into an ordered record. Integral
// numbers become int64 so they are stored as integers rather than doubles.
// A repeated key keeps its first position and its last value.
func decodeObject(w http.ResponseWriter, r *http.Request) (*domain.Record, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrNotObject
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrNotObject, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, domain.ErrNotObject
	}

	fields, err := decodeFields(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotObject, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", domain.ErrNotObject)
	}
	return domain.NewRecord(fields), nil
}

// decodeFields reads object members up to and including the closing brace.
func decodeFields(dec *json.Decoder) (bson.D, error) {
	rec := domain.NewRecord(nil)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		rec.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec.Fields(), nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeFields(dec)
		case '[':
			arr := bson.A{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", v)
		}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		if f, err := v.Float64(); err == nil {
			return f, nil
		}
		return v.String(), nil
	default:
		// string, bool or nil
		return v, nil
	}
}

// FindUserQuery is the query string of GET /user/find.
type FindUserQuery struct {
	ID    string `url:"id,omitempty" validate:"omitempty,mongodb"`
	Email string `url:"email,omitempty"`
}

// BookingsQuery is the query string of GET /bookings.
type BookingsQuery struct {
	ID    string `url:"id,omitempty" validate:"omitempty,mongodb"`
	Email string `url:"email,omitempty"`
	From  string `url:"from,omitempty"`
	To    string `url:"to,omitempty"`
}

// Filter builds the store filter. The date window applies only when both ends are given.
func (q BookingsQuery) Filter() (domain.BookingFilter, error) {
	f := domain.BookingFilter{Email: q.Email}
	if q.From != "" && q.To != "" {
		window, err := domain.NewDayRange(q.From, q.To)
		if err != nil {
			return domain.BookingFilter{}, err
		}
		f.DeliveryWindow = window
	}
	return f, nil
}

type registerInput struct {
	Email string `validate:"required,email"`
}
