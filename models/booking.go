package models

// WizardStep is the cursor of the booking wizard.
type WizardStep int

const (
	StepItinerary WizardStep = 0
	StepDriver    WizardStep = 1
	StepReview    WizardStep = 2
)

// WizardState tags where a wizard session currently is. Confirmed is terminal.
type WizardState string

const (
	StateItinerary WizardState = "itinerary"
	StateDriver    WizardState = "driver"
	StateReview    WizardState = "review"
	StateConfirmed WizardState = "confirmed"
)

// BookingDraft is the itinerary data collected in step one. Every field has a
// defaulted value so the draft is well-formed before any user input.
type BookingDraft struct {
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	PickupDate      string `json:"pickupDate"`
	DropoffDate     string `json:"dropoffDate"`
	Insurance       bool   `json:"insurance"`
	DriverAge       int    `json:"driverAge"`
}

// DriverDetails is the contact data collected in step two. Free text, no
// format validation is enforced.
type DriverDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// PriceQuote is the running total shown alongside the wizard.
type PriceQuote struct {
	Days          int     `json:"days"`
	Base          float64 `json:"base"`
	InsuranceCost float64 `json:"insuranceCost"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	DisplayTotal  int     `json:"displayTotal"`
}

// WizardSession holds context for one booking-in-progress, scoped to exactly
// one vehicle. It lives in the session cache under its SessionID.
type WizardSession struct {
	SessionID string        `json:"sessionId"`
	Vehicle   Vehicle       `json:"vehicle"`
	Step      WizardStep    `json:"step"`
	Confirmed bool          `json:"confirmed"`
	Draft     BookingDraft  `json:"draft"`
	Driver    DriverDetails `json:"driver"`
}

// State reports the tagged state for the current cursor position.
func (s *WizardSession) State() WizardState {
	if s.Confirmed {
		return StateConfirmed
	}
	switch s.Step {
	case StepDriver:
		return StateDriver
	case StepReview:
		return StateReview
	default:
		return StateItinerary
	}
}

// WizardSnapshot is the presentation-facing view of a wizard session.
type WizardSnapshot struct {
	SessionID    string        `json:"sessionId"`
	State        WizardState   `json:"state"`
	Step         WizardStep    `json:"step"`
	Vehicle      Vehicle       `json:"vehicle"`
	Draft        BookingDraft  `json:"draft"`
	Driver       DriverDetails `json:"driver"`
	Quote        PriceQuote    `json:"quote"`
	Confirmation string        `json:"confirmation,omitempty"`
}

// DraftUpdate is a partial update of the booking draft; nil fields are left
// untouched.
type DraftUpdate struct {
	PickupLocation  *string `json:"pickupLocation"`
	DropoffLocation *string `json:"dropoffLocation"`
	PickupDate      *string `json:"pickupDate"`
	DropoffDate     *string `json:"dropoffDate"`
	Insurance       *bool   `json:"insurance"`
	DriverAge       *int    `json:"driverAge"`
}

// DriverUpdate is a partial update of the driver details.
type DriverUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}
