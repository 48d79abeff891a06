package domain

import (
	"fmt"
	"time"
)

const RequestedDeliveryDateField = "requestedDeliveryDate"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 (with or without fraction), a zone-less
// date-time or a bare calendar date. Zone-less values are UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// NormalizeBooking converts a string requestedDeliveryDate into a timestamp in place.
// Absent or non-string values are left untouched.
func NormalizeBooking(rec *Record) error {
	v, _ := rec.Get(RequestedDeliveryDateField)
	raw, ok := v.(string)
	if !ok {
		return nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", RequestedDeliveryDateField, err)
	}
	rec.Set(RequestedDeliveryDateField, t)
	return nil
}

// DateRange is an inclusive [From, To] interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDayRange spans from the first millisecond of from's day to the last
// millisecond of to's day, both in UTC.
func NewDayRange(from, to string) (*DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	t, err := ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	start := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return &DateRange{From: start, To: end}, nil
}

// BookingFilter selects bookings. A nil DeliveryWindow means no date constraint.
type BookingFilter struct {
	Email          string
	DeliveryWindow *DateRange
}
