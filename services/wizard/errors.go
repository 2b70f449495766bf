package wizard

import "fmt"

// WizardError is a validation-class error raised while building a booking.
// These are contained within the flow and never escalate past the handlers.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRangeError(msg string) error {
	return &WizardError{Code: "invalidRange", Message: msg}
}

func NewQuantityExceedsStockError(msg string) error {
	return &WizardError{Code: "quantityExceedsStock", Message: msg}
}

func NewIncompleteBookingError(msg string) error {
	return &WizardError{Code: "incompleteBooking", Message: msg}
}

func NewItemUnavailableError(msg string) error {
	return &WizardError{Code: "itemUnavailable", Message: msg}
}

func NewSubmissionInProgressError() error {
	return &WizardError{Code: "submissionInProgress", Message: "a submission is already in progress for this session"}
}

// ErrSessionNotFound is returned when a session has expired or never existed.
var ErrSessionNotFound = &WizardError{Code: "sessionNotFound", Message: "booking session not found or expired"}

// SubmissionErrorKind classifies failures reported by the platform API.
type SubmissionErrorKind string

const (
	SubmissionErrorNetwork      SubmissionErrorKind = "network"
	SubmissionErrorUnauthorized SubmissionErrorKind = "unauthorized"
	SubmissionErrorRejected     SubmissionErrorKind = "rejected"
)

// SubmissionError carries a normalized message extracted from the platform
// API's error payload. It is the only error class that crosses the service
// boundary unrecovered.
type SubmissionError struct {
	Kind    SubmissionErrorKind
	Message string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed (%s): %s", e.Kind, e.Message)
}
