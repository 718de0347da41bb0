// File: services/booking/wizard.go
package booking

import (
	"context"
	"fmt"

	"luxdrive/models"

	"github.com/google/uuid"
)

// Open creates a new wizard session scoped to one vehicle, assigns it a
// unique SessionID, and stores it with defaulted draft values: first catalog
// location for both pickup and drop-off, empty dates, no insurance, age 25.
func (s *DefaultWizardService) Open(ctx context.Context, vehicleID string) (*models.WizardSnapshot, error) {
	vehicle, ok := s.Catalog.VehicleByID(vehicleID)
	if !ok {
		return nil, ErrVehicleNotFound
	}

	session := models.WizardSession{
		SessionID: uuid.New().String(),
		Vehicle:   vehicle,
		Step:      models.StepItinerary,
		Draft: models.BookingDraft{
			PickupLocation:  s.Catalog.DefaultLocation(),
			DropoffLocation: s.Catalog.DefaultLocation(),
			DriverAge:       25,
		},
	}

	if err := s.Store.Save(ctx, &session); err != nil {
		return nil, fmt.Errorf("failed to store wizard session: %w", err)
	}
	return s.snapshot(&session), nil
}

// Get returns the current snapshot of a wizard session.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(session), nil
}

// UpdateItinerary applies a partial update to the booking draft. No field is
// validated; any value, including empty dates, is accepted.
func (s *DefaultWizardService) UpdateItinerary(ctx context.Context, sessionID string, upd models.DraftUpdate) (*models.WizardSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if upd.PickupLocation != nil {
		session.Draft.PickupLocation = *upd.PickupLocation
	}
	if upd.DropoffLocation != nil {
		session.Draft.DropoffLocation = *upd.DropoffLocation
	}
	if upd.PickupDate != nil {
		session.Draft.PickupDate = *upd.PickupDate
	}
	if upd.DropoffDate != nil {
		session.Draft.DropoffDate = *upd.DropoffDate
	}
	if upd.Insurance != nil {
		session.Draft.Insurance = *upd.Insurance
	}
	if upd.DriverAge != nil {
		session.Draft.DriverAge = *upd.DriverAge
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update wizard session: %w", err)
	}
	return s.snapshot(session), nil
}

// UpdateDriver applies a partial update to the driver details. Free text, no
// format validation.
func (s *DefaultWizardService) UpdateDriver(ctx context.Context, sessionID string, upd models.DriverUpdate) (*models.WizardSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		session.Driver.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		session.Driver.LastName = *upd.LastName
	}
	if upd.Email != nil {
		session.Driver.Email = *upd.Email
	}
	if upd.Phone != nil {
		session.Driver.Phone = *upd.Phone
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update wizard session: %w", err)
	}
	return s.snapshot(session), nil
}

// Next advances the wizard one step. There is no validation gate between
// steps; advancing from the review step confirms the booking, which is
// terminal. Next on a confirmed session is a no-op.
func (s *DefaultWizardService) Next(ctx context.Context, sessionID string) (*models.WizardSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Confirmed {
		if session.Step < models.StepReview {
			session.Step++
		} else {
			session.Confirmed = true
		}
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update wizard session: %w", err)
		}
	}
	return s.snapshot(session), nil
}

// Back moves the wizard one step backwards, a no-op at the itinerary step and
// on a confirmed session.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSnapshot, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Confirmed && session.Step > models.StepItinerary {
		session.Step--
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update wizard session: %w", err)
		}
	}
	return s.snapshot(session), nil
}

// Close discards the wizard session and everything it holds. Drafts are never
// saved for later.
func (s *DefaultWizardService) Close(ctx context.Context, sessionID string) error {
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to discard wizard session: %w", err)
	}
	return nil
}

func (s *DefaultWizardService) snapshot(session *models.WizardSession) *models.WizardSnapshot {
	snap := &models.WizardSnapshot{
		SessionID: session.SessionID,
		State:     session.State(),
		Step:      session.Step,
		Vehicle:   session.Vehicle,
		Draft:     session.Draft,
		Driver:    session.Driver,
		Quote:     Quote(session.Vehicle.PricePerDay, session.Draft.Insurance),
	}
	if session.Confirmed {
		snap.Confirmation = fmt.Sprintf(
			"You're all set to drive the %s %s. A confirmation email has been sent to %s.",
			session.Vehicle.Brand, session.Vehicle.Name, session.Driver.Email,
		)
	}
	return snap
}
