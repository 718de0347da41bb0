package booking

import (
	"math"

	"luxdrive/models"
)

// rentalDays is fixed: the quote deliberately does not derive a duration from
// the selected pickup/drop-off dates.
// TODO: derive days from the itinerary dates once product confirms the rule.
const rentalDays = 3

// insurancePerDay is the flat daily cost of full-coverage insurance.
const insurancePerDay = 30.0

// taxRate applies to the pre-insurance base only.
const taxRate = 0.10

// Quote computes the running total for a booking: base price for the fixed
// rental duration, optional insurance, plus tax on the base.
func Quote(pricePerDay float64, insurance bool) models.PriceQuote {
	base := pricePerDay * rentalDays
	insuranceCost := 0.0
	if insurance {
		insuranceCost = insurancePerDay * rentalDays
	}
	tax := base * taxRate
	total := base + insuranceCost + tax

	return models.PriceQuote{
		Days:          rentalDays,
		Base:          base,
		InsuranceCost: insuranceCost,
		Tax:           tax,
		Total:         total,
		DisplayTotal:  int(math.Floor(total)),
	}
}
