// File: services/catalog/fleet.go
package catalog

import "luxdrive/models"

var defaultLocations = []string{
	"New York, JFK Airport",
	"Los Angeles, LAX Airport",
	"Miami, South Beach",
	"San Francisco, Union Square",
	"Chicago, O'Hare Airport",
	"Las Vegas, The Strip",
}

var defaultFleet = []models.Vehicle{
	{
		ID:           "1",
		Brand:        "Tesla",
		Name:         "Model S Plaid",
		Category:     models.CategoryElectric,
		PricePerDay:  189,
		ImageURL:     "https://picsum.photos/600/400?random=1",
		Transmission: models.TransmissionAutomatic,
		Seats:        5,
		Efficiency:   models.RangeEfficiency("396 mi"),
		Available:    true,
		Features:     []string{"Autopilot", "0-60 in 1.99s", "Premium Sound"},
		Rating:       4.9,
	},
	{
		ID:           "2",
		Brand:        "Porsche",
		Name:         "911 Carrera",
		Category:     models.CategorySports,
		PricePerDay:  299,
		ImageURL:     "https://picsum.photos/600/400?random=2",
		Transmission: models.TransmissionAutomatic,
		Seats:        2,
		Efficiency:   models.MPGEfficiency(24),
		Available:    true,
		Features:     []string{"Sport Chrono", "Leather Interior", "Convertible"},
		Rating:       5.0,
	},
	{
		ID:           "3",
		Brand:        "Range Rover",
		Name:         "Autobiography",
		Category:     models.CategorySUV,
		PricePerDay:  249,
		ImageURL:     "https://picsum.photos/600/400?random=3",
		Transmission: models.TransmissionAutomatic,
		Seats:        5,
		Efficiency:   models.MPGEfficiency(18),
		Available:    true,
		Features:     []string{"Massage Seats", "AWD", "Panoramic Roof"},
		Rating:       4.8,
	},
	{
		ID:           "4",
		Brand:        "Mercedes-Benz",
		Name:         "S-Class",
		Category:     models.CategoryLuxury,
		PricePerDay:  220,
		ImageURL:     "https://picsum.photos/600/400?random=4",
		Transmission: models.TransmissionAutomatic,
		Seats:        5,
		Efficiency:   models.MPGEfficiency(25),
		Available:    false,
		Features:     []string{"Chauffeur Package", "Burmester Sound", "Ambient Lighting"},
		Rating:       4.9,
	},
	{
		ID:           "5",
		Brand:        "Toyota",
		Name:         "RAV4 Hybrid",
		Category:     models.CategorySUV,
		PricePerDay:  85,
		ImageURL:     "https://picsum.photos/600/400?random=5",
		Transmission: models.TransmissionAutomatic,
		Seats:        5,
		Efficiency:   models.MPGEfficiency(41),
		Available:    true,
		Features:     []string{"Apple CarPlay", "Safety Sense", "Spacious Trunk"},
		Rating:       4.6,
	},
	{
		ID:           "6",
		Brand:        "BMW",
		Name:         "M4 Competition",
		Category:     models.CategorySports,
		PricePerDay:  195,
		ImageURL:     "https://picsum.photos/600/400?random=6",
		Transmission: models.TransmissionAutomatic,
		Seats:        4,
		Efficiency:   models.MPGEfficiency(23),
		Available:    true,
		Features:     []string{"Carbon Fiber Trim", "Drift Analyzer", "Head-up Display"},
		Rating:       4.8,
	},
}
