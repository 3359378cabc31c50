package ports

import (
	"context"
	"iter"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// CatalogService defines use-case operations for facilities.
type CatalogService interface {
	AddFacility(ctx context.Context, name, location string, rate float64, owner *domain.Identity) (*domain.Facility, error)
	Facility(ctx context.Context, id string) (*domain.Facility, error)
	ListFacilities(ctx context.Context) iter.Seq[*domain.Facility]
	ListFacilitiesByOwner(ctx context.Context, owner *domain.Identity) iter.Seq[*domain.Facility]
}
