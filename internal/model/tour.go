package model

import "time"

// TourPrice carries a standalone price value. It is both the payload of the
// price-update endpoint and the price part of a new tour submission. A price
// must be a positive number no greater than 10000.
//
// Fields:
//
//	Price – price in the shop currency, 0 < price <= 10000.
type TourPrice struct {
	Price float64 `json:"price" validate:"gt=0,lte=10000"` // tours.price
}

// NewTour is a create-time tour submission. It has no identity yet; the
// store assigns one on insert. The cover must be a well-formed absolute URL.
// Description may be empty, the title may not.
type NewTour struct {
	TourPrice
	Title       string `json:"title" validate:"required"`   // tours.title
	Description string `json:"description"`                 // tours.description (free text, empty allowed)
	Cover       string `json:"cover" validate:"required,url"` // tours.cover
}

// SavedTour is a persisted tour record. ID and CreatedAt are assigned by the
// store on insert and are immutable afterwards; callers never supply them.
// Each SavedTour corresponds to exactly one row in the tours table and the
// ID is the sole external handle to that row.
type SavedTour struct {
	ID int64 `json:"id" validate:"gte=1"` // tours.id
	NewTour
	CreatedAt time.Time `json:"created_at"` // tours.created_at
}

// DeletedTour acknowledges a successful physical delete. It is never
// returned on failure, so Deleted is always true.
type DeletedTour struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// NewDeletedTour builds the acknowledgment for a removed record.
func NewDeletedTour(id int64) DeletedTour {
	return DeletedTour{ID: id, Deleted: true}
}
