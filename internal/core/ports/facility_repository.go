package ports

import (
	"context"
	"iter"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// FacilityRepository holds facilities in registration order.
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	FindByID(ctx context.Context, id string) (*domain.Facility, error)
	// All yields facilities in registration order. Each iteration observes the
	// repository as it is when the iteration starts.
	All(ctx context.Context) iter.Seq[*domain.Facility]
}
