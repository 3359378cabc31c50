package service

import (
	"context"
	"iter"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
)

// CatalogService implements the facility catalog.
type CatalogService struct {
	repo ports.FacilityRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.FacilityRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// AddFacility registers a facility for owner with every daily slot open.
// Only identities registered as owners may own a facility.
func (s *CatalogService) AddFacility(ctx context.Context, name, location string, rate float64, owner *domain.Identity) (*domain.Facility, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" {
		return nil, domain.ErrMissingField
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return nil, domain.ErrInvalidRate
	}
	if owner == nil || owner.Role != domain.RoleOwner {
		return nil, domain.ErrForbidden
	}

	facility := &domain.Facility{
		ID:         uuid.NewString(),
		Name:       name,
		Location:   location,
		HourlyRate: rate,
		OwnerID:    owner.ID,
		Slots:      domain.NewSlotTable(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, facility); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to add facility")
		return nil, err
	}

	s.log.Info().Str("facility_id", facility.ID).Str("name", name).Str("owner", owner.Handle).Msg("facility added")
	return facility, nil
}

func (s *CatalogService) Facility(ctx context.Context, id string) (*domain.Facility, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) ListFacilities(ctx context.Context) iter.Seq[*domain.Facility] {
	return s.repo.All(ctx)
}

// ListFacilitiesByOwner yields the subsequence of ListFacilities owned by owner.
func (s *CatalogService) ListFacilitiesByOwner(ctx context.Context, owner *domain.Identity) iter.Seq[*domain.Facility] {
	return func(yield func(*domain.Facility) bool) {
		for f := range s.repo.All(ctx) {
			if f.OwnedBy(owner) && !yield(f) {
				return
			}
		}
	}
}
