package ports

import (
	"context"
	"time"
)

// ReservationEvent announces a confirmed reservation.
type ReservationEvent struct {
	ReservationID string
	Handle        string
	FacilityID    string
	FacilityName  string
	Date          string
	TimeLabel     string
	CreatedAt     time.Time
}

// ReservationPublisher hands events off without blocking the caller.
type ReservationPublisher interface {
	Publish(event ReservationEvent)
}

// Notifier delivers a single reservation event to its audience.
type Notifier interface {
	Notify(ctx context.Context, event ReservationEvent) error
}
