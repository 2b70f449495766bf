package models

import "time"

// WizardSession holds the state of one booking-construction flow between
// steps. It lives in the session cache for the duration of the flow and is
// discarded on completion or cancellation.
type WizardSession struct {
	SessionID  string         `json:"sessionId"`
	UserID     string         `json:"userId"`
	Step       int            `json:"step"`
	DateRange  DateRange      `json:"dateRange"`
	Items      []SelectedItem `json:"items"`
	Notes      string         `json:"notes,omitempty"`
	Submitting bool           `json:"submitting,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// WizardResponse is the uniform payload returned by wizard endpoints.
type WizardResponse struct {
	Session    *WizardSession       `json:"session"`
	CanAdvance bool                 `json:"canAdvance"`
	Summary    *PricingSummary      `json:"summary,omitempty"`
	Booking    *BookingConfirmation `json:"booking,omitempty"`
}
