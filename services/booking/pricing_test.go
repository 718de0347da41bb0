package booking_test

import (
	"testing"

	"luxdrive/services/booking"

	"github.com/stretchr/testify/assert"
)

func TestQuote_WithoutInsurance(t *testing.T) {
	q := booking.Quote(189, false)

	assert.Equal(t, 3, q.Days)
	assert.InDelta(t, 567.0, q.Base, 1e-9)
	assert.Equal(t, 0.0, q.InsuranceCost)
	assert.InDelta(t, 56.7, q.Tax, 1e-9)
	assert.InDelta(t, 623.7, q.Total, 1e-9)
	assert.Equal(t, 623, q.DisplayTotal)
}

func TestQuote_WithInsurance(t *testing.T) {
	q := booking.Quote(299, true)

	assert.InDelta(t, 897.0, q.Base, 1e-9)
	assert.InDelta(t, 90.0, q.InsuranceCost, 1e-9)
	assert.InDelta(t, 89.7, q.Tax, 1e-9)
	assert.InDelta(t, 1076.7, q.Total, 1e-9)
	assert.Equal(t, 1076, q.DisplayTotal)
}

func TestQuote_TaxAppliesToBaseOnly(t *testing.T) {
	withIns := booking.Quote(100, true)
	withoutIns := booking.Quote(100, false)

	// Insurance does not change the tax line.
	assert.Equal(t, withoutIns.Tax, withIns.Tax)
	assert.InDelta(t, 90.0, withIns.InsuranceCost, 1e-9)
}

func TestQuote_ZeroPrice(t *testing.T) {
	q := booking.Quote(0, false)
	assert.Equal(t, 0.0, q.Total)
	assert.Equal(t, 0, q.DisplayTotal)
}
