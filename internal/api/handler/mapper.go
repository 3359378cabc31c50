package handler

import (
	"iter"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

func toFacilityResponse(f *domain.Facility) facilityResponse {
	slots := f.Slots.Snapshot()
	open := 0
	for _, s := range slots {
		if s.Available {
			open++
		}
	}
	return facilityResponse{
		ID:             f.ID,
		Name:           f.Name,
		Location:       f.Location,
		HourlyRate:     f.HourlyRate,
		OwnerID:        f.OwnerID,
		AvailableSlots: open,
		Slots:          slots,
		CreatedAt:      f.CreatedAt,
	}
}

// collectFacilities drains seq into response items; never returns nil so the
// JSON carries [] rather than null.
func collectFacilities(seq iter.Seq[*domain.Facility]) []facilityResponse {
	out := []facilityResponse{}
	for f := range seq {
		out = append(out, toFacilityResponse(f))
	}
	return out
}

func collectReservations(seq iter.Seq[*domain.Reservation]) []*domain.Reservation {
	out := []*domain.Reservation{}
	for r := range seq {
		out = append(out, r)
	}
	return out
}
