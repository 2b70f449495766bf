package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sewakit/models"
)

// SubmissionGateway sends an assembled booking draft to the rental platform.
type SubmissionGateway interface {
	Submit(ctx context.Context, draft *models.BookingDraft) (*models.BookingConfirmation, error)
}

// APISubmissionGateway posts booking drafts to the platform's REST API.
type APISubmissionGateway struct {
	BaseURL string
	Client  *http.Client
}

// NewAPISubmissionGateway creates a gateway targeting the given API base URL.
func NewAPISubmissionGateway(baseURL string) *APISubmissionGateway {
	return &APISubmissionGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Submit posts the draft to POST <base>/bookings. Failures are normalized
// into a SubmissionError so callers never inspect raw response payloads.
func (g *APISubmissionGateway) Submit(ctx context.Context, draft *models.BookingDraft) (*models.BookingConfirmation, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, &SubmissionError{Kind: SubmissionErrorNetwork, Message: "could not reach the booking service"}
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		var confirmation models.BookingConfirmation
		if err := json.Unmarshal(payload, &confirmation); err != nil || confirmation.BookingID == "" {
			return nil, &SubmissionError{Kind: SubmissionErrorRejected, Message: "booking service returned an unreadable confirmation"}
		}
		return &confirmation, nil
	}

	kind := SubmissionErrorRejected
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		kind = SubmissionErrorUnauthorized
	}
	return nil, &SubmissionError{Kind: kind, Message: extractErrorMessage(payload)}
}

// extractErrorMessage pulls a human-readable message out of the platform's
// error payload, falling back to a generic message.
func extractErrorMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "booking was not accepted, please try again"
}
