// Package notify delivers reservation confirmations.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/ports"
)

// LogNotifier confirms reservations by writing a structured log line.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, event ports.ReservationEvent) error {
	n.log.Info().
		Str("reservation_id", event.ReservationID).
		Str("handle", event.Handle).
		Str("facility", event.FacilityName).
		Str("date", event.Date).
		Str("time_label", event.TimeLabel).
		Msg("reservation confirmed")
	return nil
}
