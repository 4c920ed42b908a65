// Package queue defines message payloads exchanged over the message broker
// and a best-effort publisher for them.
package queue

// Actions carried by TourEvent.
const (
	ActionCreated      = "created"
	ActionPriceChanged = "price_changed"
	ActionDeleted      = "deleted"
)

// TourEvent is published whenever the catalog changes. It contains enough
// information for downstream consumers to log, notify or trigger analytics
// without querying the primary database.
type TourEvent struct {
	Action     string  `json:"action"`
	TourID     int64   `json:"tour_id"`
	Title      string  `json:"title,omitempty"`
	Price      float64 `json:"price,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}
