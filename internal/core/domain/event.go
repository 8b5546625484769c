package domain

import "time"

// SaleEventType labels what happened to a sale.
type SaleEventType string

const (
	SaleEventCreated   SaleEventType = "sale.created"
	SaleEventUpdated   SaleEventType = "sale.updated"
	SaleEventCancelled SaleEventType = "sale.cancelled"
)

// SaleEvent is broadcast to live dashboard subscribers whenever a sale
// changes.
type SaleEvent struct {
	Type       SaleEventType `json:"type"`
	Sale       Sale          `json:"sale"`
	OccurredAt time.Time     `json:"occurredAt"`
}
