package domain

import "time"

// Facility is a bookable court owned by an Owner identity.
type Facility struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	HourlyRate float64    `json:"hourly_rate"`
	OwnerID    string     `json:"owner_id"`
	Slots      *SlotTable `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
}

// OwnedBy reports whether owner is the facility's owning identity.
func (f *Facility) OwnedBy(owner *Identity) bool {
	return owner != nil && f.OwnerID == owner.ID
}
