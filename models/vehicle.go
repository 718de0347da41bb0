package models

import (
	"encoding/json"
	"fmt"
)

// VehicleCategory is the fixed set of fleet categories.
type VehicleCategory string

const (
	CategorySUV      VehicleCategory = "SUV"
	CategorySedan    VehicleCategory = "Sedan"
	CategorySports   VehicleCategory = "Sports"
	CategoryLuxury   VehicleCategory = "Luxury"
	CategoryElectric VehicleCategory = "Electric"
)

// CategorySelectorAll matches every vehicle in a filter operation.
const CategorySelectorAll = "All"

// ParseCategory maps a selector string onto a known category.
func ParseCategory(s string) (VehicleCategory, error) {
	switch VehicleCategory(s) {
	case CategorySUV, CategorySedan, CategorySports, CategoryLuxury, CategoryElectric:
		return VehicleCategory(s), nil
	}
	return "", fmt.Errorf("unknown vehicle category %q", s)
}

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Efficiency describes fuel economy. Depending on the vehicle it is either a
// numeric miles-per-gallon figure or a free-text range (electric fleet).
type Efficiency struct {
	MPG   float64 `json:"-"`
	Range string  `json:"-"`
}

// MPGEfficiency builds the numeric variant.
func MPGEfficiency(mpg float64) Efficiency {
	return Efficiency{MPG: mpg}
}

// RangeEfficiency builds the free-text variant.
func RangeEfficiency(text string) Efficiency {
	return Efficiency{Range: text}
}

// IsRange reports whether the descriptor is the free-text variant.
func (e Efficiency) IsRange() bool {
	return e.Range != ""
}

func (e Efficiency) String() string {
	if e.IsRange() {
		return e.Range
	}
	return fmt.Sprintf("%g mpg", e.MPG)
}

// MarshalJSON emits a bare number for the MPG variant and a string for the
// range variant, keeping the wire shape of the original catalog payloads.
func (e Efficiency) MarshalJSON() ([]byte, error) {
	if e.IsRange() {
		return json.Marshal(e.Range)
	}
	return json.Marshal(e.MPG)
}

func (e *Efficiency) UnmarshalJSON(data []byte) error {
	var mpg float64
	if err := json.Unmarshal(data, &mpg); err == nil {
		*e = MPGEfficiency(mpg)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("efficiency must be a number or a string: %w", err)
	}
	*e = RangeEfficiency(text)
	return nil
}

// Vehicle is a single catalog entry. Vehicles are loaded once at startup and
// never mutated.
type Vehicle struct {
	ID           string          `json:"id"`
	Brand        string          `json:"brand"`
	Name         string          `json:"name"`
	Category     VehicleCategory `json:"type"`
	PricePerDay  float64         `json:"pricePerDay"`
	ImageURL     string          `json:"image"`
	Transmission Transmission    `json:"transmission"`
	Seats        int             `json:"seats"`
	Efficiency   Efficiency      `json:"mpg"`
	Available    bool            `json:"available"`
	Features     []string        `json:"features"`
	Rating       float64         `json:"rating"`
}
