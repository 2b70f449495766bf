package models

import "time"

// DateRange is the rental window. Both ends are inclusive for day counting.
// A zero time means the end is not set yet.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Complete reports whether both ends of the range have been set.
func (r DateRange) Complete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// SelectedItem is one line of the borrower's in-progress cart.
type SelectedItem struct {
	ItemID      string   `json:"itemId"`
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name"`
	UnitPrice   int64    `json:"unitPrice"`
	Quantity    int      `json:"quantity"`
	MaxQuantity int      `json:"maxQuantity"`
}

// PricingSummary is derived from the date range and selection on every read.
type PricingSummary struct {
	SubtotalPerDay int64 `json:"subtotalPerDay"`
	DurationDays   int   `json:"durationDays"`
	Total          int64 `json:"total"`
}

// BookingDraft is the payload submitted to the platform API. Assembled once
// at finish time and never mutated afterwards.
type BookingDraft struct {
	UserID    string         `json:"userId"`
	DateRange DateRange      `json:"dateRange"`
	Items     []SelectedItem `json:"items"`
	Notes     string         `json:"notes,omitempty"`
}

// BookingConfirmation is the platform API's acknowledgement of a submitted
// booking.
type BookingConfirmation struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status,omitempty"`
}
