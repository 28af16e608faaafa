// Package queue defines message payloads exchanged over the message broker.
package queue

// PurchaseQueueName is the durable queue purchase events flow through.
const PurchaseQueueName = "purchase.recorded"

// PurchaseRecordedEvent is published after a purchase commits. It carries
// the snapshotted sale data so downstream consumers can log or notify
// without querying the primary database.
type PurchaseRecordedEvent struct {
	PurchaseID   uint64  `json:"purchase_id"`
	UserID       uint64  `json:"user_id"`
	TicketID     uint64  `json:"ticket_id"`
	FacilityName string  `json:"facility_name"`
	TicketType   string  `json:"ticket_type"`
	Quantity     int64   `json:"quantity"`
	Total        float64 `json:"total"`
	RecordedAt   string  `json:"recorded_at"`
}
