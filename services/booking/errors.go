package booking

import "errors"

var (
	// ErrVehicleNotFound is returned when a wizard is opened for an unknown
	// vehicle ID.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrSessionNotFound is returned when a wizard session does not exist or
	// has expired from the session cache.
	ErrSessionNotFound = errors.New("booking session not found or expired")
)
