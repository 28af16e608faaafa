package model

import "time"

// Ticket is a priced inventory line (e.g. "Adult", "Child") tied to a
// facility. Mirrors the `tickets` table; FacilityName is not stored on the
// row, it is joined in at read time by the repository.
type Ticket struct {
	ID           uint64    `json:"id"`
	FacilityID   uint64    `json:"facility_id"`
	FacilityName string    `json:"facility_name,omitempty"`
	Type         string    `json:"type"`
	Price        float64   `json:"price"`
	Description  string    `json:"description,omitempty"`
	Available    int64     `json:"available"`
	Sold         int64     `json:"sold"`
	CreatedAt    time.Time `json:"created_at"`
}
