package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	userRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movezy_user_registrations_total",
			Help: "User registration attempts by outcome",
		},
		[]string{"result"},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movezy_bookings_created_total",
			Help: "Bookings stored",
		},
	)

	eventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movezy_event_publish_failures_total",
			Help: "Domain events that could not be published",
		},
		[]string{"subject"},
	)
)

// hexID renders a store-assigned id; ObjectIDs use their hex form.
func hexID(id any) string {
	switch v := id.(type) {
	case interface{ Hex() string }:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}
