package wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sewakit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() *models.BookingDraft {
	return &models.BookingDraft{
		UserID:    "user-1",
		DateRange: models.DateRange{From: date(2024, 1, 15), To: date(2024, 1, 17)},
		Items: []models.SelectedItem{
			{ItemID: "a1", Kind: models.KindAsset, Name: "Camera Kit", UnitPrice: 500000, Quantity: 2, MaxQuantity: 2},
		},
		Notes: "weekend shoot",
	}
}

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)

		var draft models.BookingDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "user-1", draft.UserID)
		assert.Len(t, draft.Items, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.BookingConfirmation{BookingID: "bk-42", Status: "pending"})
	}))
	defer srv.Close()

	gw := NewAPISubmissionGateway(srv.URL)
	confirmation, err := gw.Submit(context.Background(), testDraft())
	require.NoError(t, err)
	assert.Equal(t, "bk-42", confirmation.BookingID)
}

func TestSubmit_ServerMessageIsSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "dates overlap an existing booking"})
	}))
	defer srv.Close()

	gw := NewAPISubmissionGateway(srv.URL)
	_, err := gw.Submit(context.Background(), testDraft())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmissionErrorRejected, subErr.Kind)
	assert.Equal(t, "dates overlap an existing booking", subErr.Message)
}

func TestSubmit_ErrorFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "items missing"})
	}))
	defer srv.Close()

	gw := NewAPISubmissionGateway(srv.URL)
	_, err := gw.Submit(context.Background(), testDraft())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "items missing", subErr.Message)
}

func TestSubmit_GenericFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	gw := NewAPISubmissionGateway(srv.URL)
	_, err := gw.Submit(context.Background(), testDraft())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmissionErrorRejected, subErr.Kind)
	assert.NotEmpty(t, subErr.Message)
}

func TestSubmit_UnauthorizedKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer srv.Close()

	gw := NewAPISubmissionGateway(srv.URL)
	_, err := gw.Submit(context.Background(), testDraft())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmissionErrorUnauthorized, subErr.Kind)
	assert.Equal(t, "token expired", subErr.Message)
}

func TestSubmit_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	gw := NewAPISubmissionGateway(srv.URL)
	_, err := gw.Submit(context.Background(), testDraft())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmissionErrorNetwork, subErr.Kind)
}

func TestSubmit_UnreadableConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	gw := NewAPISubmissionGateway(srv.URL)
	_, err := gw.Submit(context.Background(), testDraft())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmissionErrorRejected, subErr.Kind)
}
