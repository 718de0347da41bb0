package models_test

import (
	"encoding/json"
	"testing"

	"luxdrive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEfficiencyJSON_TaggedVariants(t *testing.T) {
	mpg, err := json.Marshal(models.MPGEfficiency(24))
	require.NoError(t, err)
	assert.Equal(t, "24", string(mpg))

	rng, err := json.Marshal(models.RangeEfficiency("396 mi"))
	require.NoError(t, err)
	assert.Equal(t, `"396 mi"`, string(rng))

	var e models.Efficiency
	require.NoError(t, json.Unmarshal([]byte("41"), &e))
	assert.False(t, e.IsRange())
	assert.Equal(t, "41 mpg", e.String())

	require.NoError(t, json.Unmarshal([]byte(`"396 mi"`), &e))
	assert.True(t, e.IsRange())
	assert.Equal(t, "396 mi", e.String())
}

func TestParseCategory(t *testing.T) {
	cat, err := models.ParseCategory("Electric")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryElectric, cat)

	_, err = models.ParseCategory("Hovercraft")
	assert.Error(t, err)
}

func TestWizardSessionState(t *testing.T) {
	s := models.WizardSession{Step: models.StepItinerary}
	assert.Equal(t, models.StateItinerary, s.State())

	s.Step = models.StepReview
	assert.Equal(t, models.StateReview, s.State())

	s.Confirmed = true
	assert.Equal(t, models.StateConfirmed, s.State())
}
