package handler

import (
	"errors"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// resultLabel turns an operation outcome into a low-cardinality metric label.
// ok is the label used on success.
func resultLabel(err error, ok string) string {
	switch {
	case err == nil:
		return ok
	case errors.Is(err, domain.ErrDuplicateHandle):
		return "duplicate_handle"
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrInvalidRate):
		return "invalid_rate"
	case errors.Is(err, domain.ErrUnknownSlot):
		return "unknown_slot"
	case errors.Is(err, domain.ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrUnknownRole):
		return "unknown_role"
	case errors.Is(err, domain.ErrFacilityNotFound):
		return "facility_not_found"
	}
	return "error"
}
