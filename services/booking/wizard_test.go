package booking_test

import (
	"context"
	"testing"

	"luxdrive/models"
	"luxdrive/services/booking"
	"luxdrive/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizardService() *booking.DefaultWizardService {
	return &booking.DefaultWizardService{
		Catalog: catalog.NewStore(),
		Store:   booking.NewMemorySessionStore(),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestOpen_DefaultsDraft(t *testing.T) {
	svc := newWizardService()
	ctx := context.Background()

	snap, err := svc.Open(ctx, "1")
	require.NoError(t, err)

	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, models.StateItinerary, snap.State)
	assert.Equal(t, "Tesla", snap.Vehicle.Brand)
	assert.Equal(t, "New York, JFK Airport", snap.Draft.PickupLocation)
	assert.Equal(t, "New York, JFK Airport", snap.Draft.DropoffLocation)
	assert.Empty(t, snap.Draft.PickupDate)
	assert.Empty(t, snap.Draft.DropoffDate)
	assert.False(t, snap.Draft.Insurance)
	assert.Equal(t, 25, snap.Draft.DriverAge)
	assert.Equal(t, models.DriverDetails{}, snap.Driver)
	assert.Equal(t, 623, snap.Quote.DisplayTotal)
}

func TestOpen_UnknownVehicle(t *testing.T) {
	svc := newWizardService()

	_, err := svc.Open(context.Background(), "999")
	assert.ErrorIs(t, err, booking.ErrVehicleNotFound)
}

func TestNext_StepBoundsAndTerminalState(t *testing.T) {
	svc := newWizardService()
	ctx := context.Background()

	snap, err := svc.Open(ctx, "2")
	require.NoError(t, err)
	id := snap.SessionID

	// Back at step 0 is a no-op.
	snap, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepItinerary, snap.Step)

	snap, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateDriver, snap.State)

	snap, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateReview, snap.State)

	// Next from review confirms; the cursor never reaches a step 3.
	snap, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirmed, snap.State)
	assert.LessOrEqual(t, snap.Step, models.StepReview)

	// Terminal: further next/back calls change nothing.
	snap, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirmed, snap.State)
	snap, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirmed, snap.State)
}

func TestNext_NoValidationGates(t *testing.T) {
	svc := newWizardService()
	ctx := context.Background()

	snap, err := svc.Open(ctx, "5")
	require.NoError(t, err)

	// Empty dates and an untouched driver form must not block advancement.
	for _, want := range []models.WizardState{models.StateDriver, models.StateReview, models.StateConfirmed} {
		snap, err = svc.Next(ctx, snap.SessionID)
		require.NoError(t, err)
		assert.Equal(t, want, snap.State)
	}
}

func TestFieldPersistenceAcrossNavigation(t *testing.T) {
	svc := newWizardService()
	ctx := context.Background()

	snap, err := svc.Open(ctx, "3")
	require.NoError(t, err)
	id := snap.SessionID

	_, err = svc.UpdateItinerary(ctx, id, models.DraftUpdate{
		PickupLocation: strPtr("Miami, South Beach"),
		PickupDate:     strPtr("2026-09-01"),
		Insurance:      boolPtr(true),
	})
	require.NoError(t, err)

	_, err = svc.Next(ctx, id)
	require.NoError(t, err)
	_, err = svc.UpdateDriver(ctx, id, models.DriverUpdate{
		FirstName: strPtr("Jane"),
		Email:     strPtr("jane@example.com"),
	})
	require.NoError(t, err)

	_, err = svc.Next(ctx, id)
	require.NoError(t, err)
	snap, err = svc.Back(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Miami, South Beach", snap.Draft.PickupLocation)
	assert.Equal(t, "2026-09-01", snap.Draft.PickupDate)
	assert.True(t, snap.Draft.Insurance)
	assert.Equal(t, "Jane", snap.Driver.FirstName)
	assert.Equal(t, "jane@example.com", snap.Driver.Email)

	// Insurance toggles the running quote: 249*3 + 90 + 74.7 = 911.7.
	assert.Equal(t, 911, snap.Quote.DisplayTotal)
}

func TestConfirmationReferencesDriverAndVehicle(t *testing.T) {
	svc := newWizardService()
	ctx := context.Background()

	snap, err := svc.Open(ctx, "6")
	require.NoError(t, err)
	id := snap.SessionID

	_, err = svc.UpdateDriver(ctx, id, models.DriverUpdate{Email: strPtr("jane@example.com")})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		snap, err = svc.Next(ctx, id)
		require.NoError(t, err)
	}

	assert.Equal(t, models.StateConfirmed, snap.State)
	assert.Contains(t, snap.Confirmation, "BMW M4 Competition")
	assert.Contains(t, snap.Confirmation, "jane@example.com")
}

func TestClose_DiscardsSessionEntirely(t *testing.T) {
	svc := newWizardService()
	ctx := context.Background()

	snap, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	id := snap.SessionID

	_, err = svc.UpdateItinerary(ctx, id, models.DraftUpdate{Insurance: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, id))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)

	// A fresh wizard for the same vehicle starts from defaults; nothing leaks
	// from the discarded session.
	fresh, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	assert.NotEqual(t, id, fresh.SessionID)
	assert.False(t, fresh.Draft.Insurance)
	assert.Equal(t, 25, fresh.Draft.DriverAge)
	assert.Equal(t, models.DriverDetails{}, fresh.Driver)
}

func TestClose_UnknownSession(t *testing.T) {
	svc := newWizardService()
	err := svc.Close(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrSessionNotFound)
}
