package ports

import (
	"context"
	"iter"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// ReservationRepository is an append-only log of reservations.
type ReservationRepository interface {
	Append(ctx context.Context, reservation *domain.Reservation) error
	// ByIdentity yields the reservations made by identityID in creation order.
	ByIdentity(ctx context.Context, identityID string) iter.Seq[*domain.Reservation]
}
