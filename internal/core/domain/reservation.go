package domain

import "time"

// Reservation binds a regular identity to one slot of a facility on a date.
// It is never mutated once created.
type Reservation struct {
	ID           string    `json:"id"`
	IdentityID   string    `json:"identity_id"`
	Handle       string    `json:"handle"`
	FacilityID   string    `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Date         string    `json:"date"`
	TimeLabel    string    `json:"time_label"`
	CreatedAt    time.Time `json:"created_at"`
}
