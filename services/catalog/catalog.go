// File: services/catalog/catalog.go
package catalog

import (
	"luxdrive/models"
)

// Store exposes the immutable fleet and the pickup/drop-off locations. It is
// populated once at construction and never mutated afterwards.
type Store struct {
	vehicles  []models.Vehicle
	locations []string
}

// NewStore returns a store holding the default LuxDrive fleet.
func NewStore() *Store {
	return &Store{
		vehicles:  defaultFleet,
		locations: defaultLocations,
	}
}

// Vehicles returns the full fleet in catalog order.
func (s *Store) Vehicles() []models.Vehicle {
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Locations returns the fixed list of pickup/drop-off locations.
func (s *Store) Locations() []string {
	out := make([]string, len(s.locations))
	copy(out, s.locations)
	return out
}

// DefaultLocation is the location a fresh booking draft starts with.
func (s *Store) DefaultLocation() string {
	return s.locations[0]
}

// VehicleByID looks up a single vehicle.
func (s *Store) VehicleByID(id string) (models.Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// FilterByCategory returns the subsequence of vehicles matching the given
// category, preserving catalog order. The "All" selector (or an empty
// selector) returns the full fleet.
func (s *Store) FilterByCategory(selector string) []models.Vehicle {
	if selector == "" || selector == models.CategorySelectorAll {
		return s.Vehicles()
	}
	var out []models.Vehicle
	for _, v := range s.vehicles {
		if string(v.Category) == selector {
			out = append(out, v)
		}
	}
	return out
}
