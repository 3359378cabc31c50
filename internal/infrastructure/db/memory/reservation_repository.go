package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// ReservationRepository is an append-only, in-memory reservation log.
type ReservationRepository struct {
	mu  sync.RWMutex
	log []*domain.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Append(_ context.Context, reservation *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log = append(r.log, reservation)
	return nil
}

func (r *ReservationRepository) ByIdentity(_ context.Context, identityID string) iter.Seq[*domain.Reservation] {
	return func(yield func(*domain.Reservation) bool) {
		r.mu.RLock()
		snapshot := slices.Clone(r.log)
		r.mu.RUnlock()

		for _, res := range snapshot {
			if res.IdentityID != identityID {
				continue
			}
			if !yield(res) {
				return
			}
		}
	}
}
