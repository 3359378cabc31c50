package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// FacilityRepository keeps facilities in registration order.
type FacilityRepository struct {
	mu    sync.RWMutex
	order []*domain.Facility
	byID  map[string]*domain.Facility
}

func NewFacilityRepository() *FacilityRepository {
	return &FacilityRepository{byID: make(map[string]*domain.Facility)}
}

func (r *FacilityRepository) Create(_ context.Context, facility *domain.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = append(r.order, facility)
	r.byID[facility.ID] = facility
	return nil
}

func (r *FacilityRepository) FindByID(_ context.Context, id string) (*domain.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFacilityNotFound
	}
	return f, nil
}

// All snapshots the registration order when iteration starts, so a facility
// added mid-iteration shows up on the next pass rather than this one.
func (r *FacilityRepository) All(_ context.Context) iter.Seq[*domain.Facility] {
	return func(yield func(*domain.Facility) bool) {
		r.mu.RLock()
		snapshot := slices.Clone(r.order)
		r.mu.RUnlock()

		for _, f := range snapshot {
			if !yield(f) {
				return
			}
		}
	}
}
