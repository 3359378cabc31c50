package handler

import (
	"time"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Handle string `json:"handle" validate:"required"`
	Secret string `json:"secret" validate:"required"`
	Role   string `json:"role"   validate:"required"`
}

type loginRequest struct {
	Handle string `json:"handle" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

// HourlyRate is a pointer so that an explicit 0 reaches the catalog and is
// reported as an invalid rate rather than a missing field.
type createFacilityRequest struct {
	Name       string   `json:"name"        validate:"required"`
	Location   string   `json:"location"    validate:"required"`
	HourlyRate *float64 `json:"hourly_rate" validate:"required"`
}

type createReservationRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Date       string `json:"date"        validate:"required"`
	TimeLabel  string `json:"time_label"  validate:"required"`
}

// --- Response types ---

type authResponse struct {
	Token     string           `json:"token,omitempty"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
	Identity  *domain.Identity `json:"identity,omitempty"`
}

type facilityResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Location       string        `json:"location"`
	HourlyRate     float64       `json:"hourly_rate"`
	OwnerID        string        `json:"owner_id"`
	AvailableSlots int           `json:"available_slots"`
	Slots          []domain.Slot `json:"slots"`
	CreatedAt      time.Time     `json:"created_at"`
}

type facilityListResponse struct {
	Items []facilityResponse `json:"items"`
	Total int                `json:"total"`
}

type reservationListResponse struct {
	Items []*domain.Reservation `json:"items"`
	Total int                   `json:"total"`
}

type dashboardResponse struct {
	Role         domain.Role           `json:"role"`
	Handle       string                `json:"handle"`
	Facilities   []facilityResponse    `json:"facilities"`
	Reservations []*domain.Reservation `json:"reservations,omitempty"`
}
