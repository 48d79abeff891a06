package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNATSPublisher_Unreachable(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1")
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), BookingCreated, BookingCreatedEvent{}))
	assert.NoError(t, p.Close())
}

func TestBookingCreatedEvent_JSON(t *testing.T) {
	when := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	b, err := json.Marshal(BookingCreatedEvent{
		BookingID:             "65a4f1c2e4b0a1b2c3d4e5f6",
		RequestedDeliveryDate: &when,
		CreatedAt:             when,
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "65a4f1c2e4b0a1b2c3d4e5f6", got["booking_id"])
	assert.Equal(t, "2024-01-15T00:00:00Z", got["requested_delivery_date"])
	assert.NotContains(t, got, "email")
}
