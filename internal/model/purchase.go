package model

import "time"

// Purchase is an immutable record of a quantity of a ticket type bought by
// a user. FacilityName, Type and Price are snapshots captured at the time
// of sale; later edits to the ticket do not rewrite history. Mirrors the
// `purchases` table.
type Purchase struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"user_id"`
	TicketID     uint64    `json:"ticket_id"`
	FacilityName string    `json:"facility_name"`
	Type         string    `json:"type"`
	Price        float64   `json:"price"`
	Quantity     int64     `json:"quantity"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}
