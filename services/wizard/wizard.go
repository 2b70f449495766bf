package wizard

import (
	"context"
	"fmt"
	"time"

	"sewakit/models"
	"sewakit/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a fresh wizard session for the user.
func (s *DefaultWizardService) StartSession(userID string) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      StepDateRange,
		Items:     []models.SelectedItem{},
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current state of a session.
func (s *DefaultWizardService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(sessionID)
}

// SetDateRange replaces the session's rental window wholesale.
func (s *DefaultWizardService) SetDateRange(sessionID string, from, to time.Time) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	if from.IsZero() || to.IsZero() {
		return nil, NewInvalidRangeError("both rental dates are required")
	}
	if startOfDay(to).Before(startOfDay(from)) {
		return nil, NewInvalidRangeError("the return date must not be before the pickup date")
	}
	session.DateRange = models.DateRange{From: from, To: to}
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddItem adds one unit of a catalog item to the selection.
func (s *DefaultWizardService) AddItem(sessionID, itemID string, kind models.ItemKind) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.CatalogSvc.GetItem(itemID, kind)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, NewItemUnavailableError(fmt.Sprintf("%s is not available for booking", item.Name))
	}
	session.Items = AddItem(session.Items, *item)
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetQuantity sets the selected quantity of an item directly.
func (s *DefaultWizardService) SetQuantity(sessionID, itemID string, kind models.ItemKind, quantity int) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	items, err := SetQuantity(session.Items, itemID, kind, quantity)
	if err != nil {
		return nil, err
	}
	session.Items = items
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// RemoveItem deletes an item from the selection.
func (s *DefaultWizardService) RemoveItem(sessionID, itemID string, kind models.ItemKind) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	session.Items = RemoveItem(session.Items, itemID, kind)
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Next advances the session one step when the current step validates. A
// gated advance is a no-op, not an error; callers read CanAdvance to render
// the control state.
func (s *DefaultWizardService) Next(sessionID string) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	if Advance(session) {
		if err := s.Store.Save(session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Previous moves the session one step back.
func (s *DefaultWizardService) Previous(sessionID string) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	if Retreat(session) {
		if err := s.Store.Save(session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// GoTo jumps to a step directly; forward skips are refused as no-ops.
func (s *DefaultWizardService) GoTo(sessionID string, step int) (*models.WizardSession, error) {
	session, err := s.loadMutable(sessionID)
	if err != nil {
		return nil, err
	}
	if JumpTo(session, step) {
		if err := s.Store.Save(session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Summary computes the pricing summary for the confirmation step.
func (s *DefaultWizardService) Summary(sessionID string) (*models.PricingSummary, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return Summarize(session.DateRange, session.Items)
}

// Finish assembles the booking draft and submits it to the platform. Exactly
// one submission can be in flight per session; the submitting flag rejects
// concurrent finishes and all navigation until the call settles. On failure
// the session stays on the confirmation step so the user can retry.
func (s *DefaultWizardService) Finish(ctx context.Context, sessionID, notes string) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, NewSubmissionInProgressError()
	}
	if session.Step != StepConfirm {
		return nil, NewIncompleteBookingError("booking has not reached the confirmation step")
	}
	if invalid := firstInvalidStep(session); invalid != StepConfirm {
		session.Step = invalid
		if err := s.Store.Save(session); err != nil {
			return nil, err
		}
		return nil, NewIncompleteBookingError("booking is missing required details")
	}

	session.Submitting = true
	session.Notes = notes
	if err := s.Store.Save(session); err != nil {
		return nil, err
	}

	draft := &models.BookingDraft{
		UserID:    session.UserID,
		DateRange: session.DateRange,
		Items:     session.Items,
		Notes:     notes,
	}
	confirmation, err := s.Gateway.Submit(ctx, draft)
	if err != nil {
		logger.Warn("booking submission failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		// Unlock only a session that still exists; a cancellation during the
		// call must not be undone by writing the session back.
		current, getErr := s.Store.Get(sessionID)
		if getErr != nil {
			logger.Warn("discarding submission failure for cancelled session",
				zap.String("sessionID", sessionID))
			return nil, ErrSessionNotFound
		}
		current.Submitting = false
		if saveErr := s.Store.Save(current); saveErr != nil {
			logger.Error("failed to unlock session after submission failure",
				zap.String("sessionID", sessionID), zap.Error(saveErr))
		}
		return nil, err
	}

	// The session may have been cancelled while the call was in flight; in
	// that case the late result is discarded instead of applied.
	if _, err := s.Store.Get(sessionID); err != nil {
		logger.Warn("discarding confirmation for cancelled session",
			zap.String("sessionID", sessionID), zap.String("bookingID", confirmation.BookingID))
		return nil, ErrSessionNotFound
	}
	if err := s.Store.Delete(sessionID); err != nil {
		logger.Error("failed to clear completed session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("booking submitted",
		zap.String("sessionID", sessionID), zap.String("bookingID", confirmation.BookingID))
	return confirmation, nil
}

// CancelSession discards the session and everything in it.
func (s *DefaultWizardService) CancelSession(sessionID string) error {
	return s.Store.Delete(sessionID)
}

// loadMutable fetches a session and refuses mutation while a submission is
// in flight.
func (s *DefaultWizardService) loadMutable(sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, NewSubmissionInProgressError()
	}
	return session, nil
}
