package service

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
)

// LedgerService records reservations against the catalog's slot tables.
type LedgerService struct {
	facilities   ports.FacilityRepository
	reservations ports.ReservationRepository
	publisher    ports.ReservationPublisher
	log          zerolog.Logger
}

// NewLedgerService returns a LedgerService. publisher may be nil.
func NewLedgerService(
	facilities ports.FacilityRepository,
	reservations ports.ReservationRepository,
	publisher ports.ReservationPublisher,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		facilities:   facilities,
		reservations: reservations,
		publisher:    publisher,
		log:          log,
	}
}

// Reserve claims timeLabel on facility for identity. The claim and the
// transition of the slot to taken happen under the facility's slot lock, so
// concurrent callers for the same slot see exactly one success.
func (s *LedgerService) Reserve(ctx context.Context, identity *domain.Identity, facility *domain.Facility, date, timeLabel string) (*domain.Reservation, error) {
	if identity == nil || facility == nil || strings.TrimSpace(date) == "" || strings.TrimSpace(timeLabel) == "" {
		return nil, domain.ErrMissingField
	}
	if identity.Role != domain.RoleRegular {
		return nil, domain.ErrForbidden
	}

	// Claim on the catalog's own record, not on whatever copy the caller holds.
	canonical, err := s.facilities.FindByID(ctx, facility.ID)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	if err := canonical.Slots.Claim(timeLabel); err != nil {
		s.log.Debug().Err(err).
			Str("facility_id", canonical.ID).
			Str("time_label", timeLabel).
			Str("handle", identity.Handle).
			Msg("reservation rejected")
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:           uuid.NewString(),
		IdentityID:   identity.ID,
		Handle:       identity.Handle,
		FacilityID:   canonical.ID,
		FacilityName: canonical.Name,
		Date:         date,
		TimeLabel:    timeLabel,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.reservations.Append(ctx, reservation); err != nil {
		// The slot stays taken: there is no way back from taken.
		s.log.Error().Err(err).Str("facility_id", canonical.ID).Str("time_label", timeLabel).Msg("failed to record reservation")
		return nil, fmt.Errorf("reserve: record: %w", err)
	}

	s.log.Info().
		Str("reservation_id", reservation.ID).
		Str("facility_id", canonical.ID).
		Str("date", date).
		Str("time_label", timeLabel).
		Str("handle", identity.Handle).
		Msg("reservation created")

	if s.publisher != nil {
		s.publisher.Publish(ports.ReservationEvent{
			ReservationID: reservation.ID,
			Handle:        reservation.Handle,
			FacilityID:    reservation.FacilityID,
			FacilityName:  reservation.FacilityName,
			Date:          reservation.Date,
			TimeLabel:     reservation.TimeLabel,
			CreatedAt:     reservation.CreatedAt,
		})
	}
	return reservation, nil
}

func (s *LedgerService) ListReservationsFor(ctx context.Context, identity *domain.Identity) iter.Seq[*domain.Reservation] {
	if identity == nil {
		return func(func(*domain.Reservation) bool) {}
	}
	return s.reservations.ByIdentity(ctx, identity.ID)
}
