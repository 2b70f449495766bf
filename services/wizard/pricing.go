package wizard

import (
	"time"

	"sewakit/models"
)

// startOfDay normalizes a timestamp to its calendar date. Both ends of a
// range are normalized before subtracting so clock times and DST shifts
// cannot skew the day count.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RentalDays returns the inclusive day count of the range. A same-day
// booking counts as one day.
func RentalDays(r models.DateRange) (int, error) {
	if !r.Complete() {
		return 0, NewInvalidRangeError("both rental dates are required")
	}
	days := int(startOfDay(r.To).Sub(startOfDay(r.From)).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

// SubtotalPerDay sums unit price times quantity over the selection. Service
// unit rates aggregate the same way as asset day rates; the per-day figure
// is nominal for services.
func SubtotalPerDay(items []models.SelectedItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return subtotal
}

// TotalPrice is the per-day subtotal multiplied by the rental duration.
func TotalPrice(r models.DateRange, items []models.SelectedItem) (int64, error) {
	days, err := RentalDays(r)
	if err != nil {
		return 0, err
	}
	return SubtotalPerDay(items) * int64(days), nil
}

// Summarize computes the pricing summary for the confirmation step.
func Summarize(r models.DateRange, items []models.SelectedItem) (*models.PricingSummary, error) {
	days, err := RentalDays(r)
	if err != nil {
		return nil, err
	}
	subtotal := SubtotalPerDay(items)
	return &models.PricingSummary{
		SubtotalPerDay: subtotal,
		DurationDays:   days,
		Total:          subtotal * int64(days),
	}, nil
}
