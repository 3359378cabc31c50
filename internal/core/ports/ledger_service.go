package ports

import (
	"context"
	"iter"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// LedgerService defines use-case operations for reservations.
type LedgerService interface {
	Reserve(ctx context.Context, identity *domain.Identity, facility *domain.Facility, date, timeLabel string) (*domain.Reservation, error)
	ListReservationsFor(ctx context.Context, identity *domain.Identity) iter.Seq[*domain.Reservation]
}
