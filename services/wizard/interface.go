package wizard

import (
	"context"
	"time"

	"sewakit/models"
	"sewakit/services/catalog"
)

// WizardService drives one booking-construction flow: date range, item
// selection, then a priced confirmation that is submitted to the platform.
type WizardService interface {
	StartSession(userID string) (*models.WizardSession, error)
	GetSession(sessionID string) (*models.WizardSession, error)
	SetDateRange(sessionID string, from, to time.Time) (*models.WizardSession, error)
	AddItem(sessionID, itemID string, kind models.ItemKind) (*models.WizardSession, error)
	SetQuantity(sessionID, itemID string, kind models.ItemKind, quantity int) (*models.WizardSession, error)
	RemoveItem(sessionID, itemID string, kind models.ItemKind) (*models.WizardSession, error)
	Next(sessionID string) (*models.WizardSession, error)
	Previous(sessionID string) (*models.WizardSession, error)
	GoTo(sessionID string, step int) (*models.WizardSession, error)
	Summary(sessionID string) (*models.PricingSummary, error)
	Finish(ctx context.Context, sessionID, notes string) (*models.BookingConfirmation, error)
	CancelSession(sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store      SessionStore
	CatalogSvc catalog.CatalogService
	Gateway    SubmissionGateway
}
