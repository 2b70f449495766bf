package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"sewakit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore mimics the Redis store, including its JSON round-trip: a
// loaded session is always a detached copy.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string][]byte)}
}

func (m *memoryStore) Save(session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = data
	return nil
}

func (m *memoryStore) Get(sessionID string) (*models.WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (m *memoryStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

type fakeCatalog struct {
	items map[string]models.CatalogItem
}

func (f *fakeCatalog) GetCatalog(query string) ([]models.CatalogItem, error) {
	return nil, nil
}

func (f *fakeCatalog) GetItem(itemID string, kind models.ItemKind) (*models.CatalogItem, error) {
	item, ok := f.items[string(kind)+"/"+itemID]
	if !ok {
		return nil, fmt.Errorf("item %s not found", itemID)
	}
	return &item, nil
}

type fakeGateway struct {
	mu    sync.Mutex
	calls int
	block chan struct{} // when set, Submit waits until it is closed
	err   error
}

func (g *fakeGateway) Submit(ctx context.Context, draft *models.BookingDraft) (*models.BookingConfirmation, error) {
	g.mu.Lock()
	g.calls++
	block := g.block
	g.mu.Unlock()
	if block != nil {
		<-block
	}
	if g.err != nil {
		return nil, g.err
	}
	return &models.BookingConfirmation{BookingID: "bk-1", Status: "pending"}, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func newTestService(gw SubmissionGateway) (*DefaultWizardService, *memoryStore) {
	store := newMemoryStore()
	svc := &DefaultWizardService{
		Store: store,
		CatalogSvc: &fakeCatalog{items: map[string]models.CatalogItem{
			"asset/a1":   {ID: "a1", Code: "CAM-01", Name: "Camera Kit", Kind: models.KindAsset, UnitPrice: 500000, Available: true, MaxQuantity: 2},
			"asset/a2":   {ID: "a2", Code: "PRJ-01", Name: "Projector", Kind: models.KindAsset, UnitPrice: 300000, Available: false, MaxQuantity: 1},
			"service/s1": {ID: "s1", Code: "CRW-01", Name: "Camera Crew", Kind: models.KindService, UnitPrice: 2000000, Available: true, MaxQuantity: models.UnlimitedQuantity},
		}},
		Gateway: gw,
	}
	return svc, store
}

func TestWizard_FullFlow(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw)

	session, err := svc.StartSession("user-1")
	require.NoError(t, err)
	assert.Equal(t, StepDateRange, session.Step)
	assert.False(t, CanAdvance(session))

	session, err = svc.SetDateRange(session.SessionID, date(2024, 1, 15), date(2024, 1, 17))
	require.NoError(t, err)
	assert.True(t, CanAdvance(session))

	session, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepItems, session.Step)

	session, err = svc.AddItem(session.SessionID, "a1", models.KindAsset)
	require.NoError(t, err)
	session, err = svc.AddItem(session.SessionID, "a1", models.KindAsset)
	require.NoError(t, err)
	session, err = svc.AddItem(session.SessionID, "s1", models.KindService)
	require.NoError(t, err)

	session, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepConfirm, session.Step)

	summary, err := svc.Summary(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000000), summary.SubtotalPerDay)
	assert.Equal(t, 3, summary.DurationDays)
	assert.Equal(t, int64(9000000), summary.Total)

	confirmation, err := svc.Finish(context.Background(), session.SessionID, "weekend shoot")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", confirmation.BookingID)
	assert.Equal(t, 1, gw.callCount())

	// The session is discarded after a successful submission.
	_, err = svc.GetSession(session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizard_NextIsNoopWhenGated(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})

	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	session, err = svc.Next(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepDateRange, session.Step)
}

func TestWizard_SetDateRangeRejectsReversedDates(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})

	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.SetDateRange(session.SessionID, date(2024, 1, 17), date(2024, 1, 15))
	var wizErr *WizardError
	require.ErrorAs(t, err, &wizErr)
	assert.Equal(t, "invalidRange", wizErr.Code)

	// The rejected mutation left the range unset.
	session, err = svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.False(t, session.DateRange.Complete())
}

func TestWizard_AddUnavailableItemRejected(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})

	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.AddItem(session.SessionID, "a2", models.KindAsset)
	var wizErr *WizardError
	require.ErrorAs(t, err, &wizErr)
	assert.Equal(t, "itemUnavailable", wizErr.Code)
}

func TestWizard_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	_, err := svc.GetSession("ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// readySession stores a session that is valid up to the confirmation step.
func readySession(t *testing.T, store *memoryStore) *models.WizardSession {
	t.Helper()
	session := &models.WizardSession{
		SessionID: "sess-ready",
		UserID:    "user-1",
		Step:      StepConfirm,
		DateRange: models.DateRange{From: date(2024, 1, 15), To: date(2024, 1, 17)},
		Items: []models.SelectedItem{
			{ItemID: "a1", Kind: models.KindAsset, Name: "Camera Kit", UnitPrice: 500000, Quantity: 2, MaxQuantity: 2},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(session))
	return session
}

func TestFinish_RequiresConfirmStep(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})

	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.Finish(context.Background(), session.SessionID, "")
	var wizErr *WizardError
	require.ErrorAs(t, err, &wizErr)
	assert.Equal(t, "incompleteBooking", wizErr.Code)
}

func TestFinish_EmptySelectionReturnsToItemsStep(t *testing.T) {
	gw := &fakeGateway{}
	svc, store := newTestService(gw)

	session := readySession(t, store)
	session.Items = nil
	require.NoError(t, store.Save(session))

	_, err := svc.Finish(context.Background(), session.SessionID, "")
	var wizErr *WizardError
	require.ErrorAs(t, err, &wizErr)
	assert.Equal(t, "incompleteBooking", wizErr.Code)
	assert.Equal(t, 0, gw.callCount())

	reloaded, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepItems, reloaded.Step)
}

func TestFinish_SecondSubmitRejectedWhileInFlight(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{})}
	svc, store := newTestService(gw)
	session := readySession(t, store)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Finish(context.Background(), session.SessionID, "")
		done <- err
	}()

	require.Eventually(t, func() bool { return gw.callCount() == 1 },
		time.Second, 5*time.Millisecond)

	// The gateway call is still pending; a second finish must not reach it.
	_, err := svc.Finish(context.Background(), session.SessionID, "")
	var wizErr *WizardError
	require.ErrorAs(t, err, &wizErr)
	assert.Equal(t, "submissionInProgress", wizErr.Code)

	// Navigation and mutation are locked too.
	_, err = svc.Next(session.SessionID)
	require.ErrorAs(t, err, &wizErr)
	assert.Equal(t, "submissionInProgress", wizErr.Code)

	close(gw.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, gw.callCount())
}

func TestFinish_GatewayFailureKeepsSessionForRetry(t *testing.T) {
	gw := &fakeGateway{err: &SubmissionError{Kind: SubmissionErrorRejected, Message: "asset no longer in stock"}}
	svc, store := newTestService(gw)
	session := readySession(t, store)

	_, err := svc.Finish(context.Background(), session.SessionID, "")
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, SubmissionErrorRejected, subErr.Kind)
	assert.Equal(t, "asset no longer in stock", subErr.Message)

	// The session stays on the confirmation step, unlocked, so the user can
	// retry without re-entering anything.
	reloaded, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, reloaded.Step)
	assert.False(t, reloaded.Submitting)
}

func TestFinish_CancelledMidFlightFailureLeavesSessionDeleted(t *testing.T) {
	gw := &fakeGateway{
		block: make(chan struct{}),
		err:   &SubmissionError{Kind: SubmissionErrorNetwork, Message: "connection reset"},
	}
	svc, store := newTestService(gw)
	session := readySession(t, store)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Finish(context.Background(), session.SessionID, "")
		done <- err
	}()

	require.Eventually(t, func() bool { return gw.callCount() == 1 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, svc.CancelSession(session.SessionID))
	close(gw.block)

	err := <-done
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// The failure-path unlock must not write the cancelled session back.
	_, err = svc.GetSession(session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFinish_CancelledMidFlightDiscardsResult(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{})}
	svc, store := newTestService(gw)
	session := readySession(t, store)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Finish(context.Background(), session.SessionID, "")
		done <- err
	}()

	require.Eventually(t, func() bool { return gw.callCount() == 1 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, svc.CancelSession(session.SessionID))
	close(gw.block)

	err := <-done
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
