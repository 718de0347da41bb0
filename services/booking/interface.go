package booking

import (
	"context"

	"luxdrive/models"
	"luxdrive/services/catalog"
)

// WizardService defines the interface for driving a stateful booking wizard
// session: a linear Itinerary -> Driver -> Review flow ending in a terminal
// confirmed state.
type WizardService interface {
	Open(ctx context.Context, vehicleID string) (*models.WizardSnapshot, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSnapshot, error)
	UpdateItinerary(ctx context.Context, sessionID string, upd models.DraftUpdate) (*models.WizardSnapshot, error)
	UpdateDriver(ctx context.Context, sessionID string, upd models.DriverUpdate) (*models.WizardSnapshot, error)
	Next(ctx context.Context, sessionID string) (*models.WizardSnapshot, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSnapshot, error)
	Close(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService on top of a SessionStore.
type DefaultWizardService struct {
	Catalog *catalog.Store
	Store   SessionStore
}
