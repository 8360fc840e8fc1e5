package models

import "time"

// MandapAddress is the address block of a venue as stored by the backend.
type MandapAddress struct {
	FullAddress string     `json:"fullAddress"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PinCode     FlexString `json:"pinCode"`
}

// Mandap is a venue exactly as the backend returns it.
type Mandap struct {
	ID                        string         `json:"_id"`
	MandapName                string         `json:"mandapName"`
	MandapDesc                string         `json:"mandapDesc"`
	Address                   *MandapAddress `json:"address,omitempty"`
	GuestCapacity             int            `json:"guestCapacity"`
	VenuePricing              float64        `json:"venuePricing"`
	VenueImages               []string       `json:"venueImages"`
	Amenities                 []string       `json:"amenities"`
	VenueType                 []string       `json:"venueType"`
	OutdoorFacilities         []string       `json:"outdoorFacilities"`
	PaymentOptions            []string       `json:"paymentOptions"`
	AvailableDates            []string       `json:"availableDates"`
	SecurityDeposit           float64        `json:"securityDeposit"`
	SecurityDepositType       string         `json:"securityDepositType"`
	CancellationPolicy        string         `json:"cancellationPolicy"`
	PenaltyChargesPerHour     float64        `json:"penaltyChargesPerHour"`
	AdvancePayment            float64        `json:"advancePayment"`
	IsExternalCateringAllowed bool           `json:"isExternalCateringAllowed"`
	CreatedAt                 time.Time      `json:"createdAt"`
}

// MandapInput is the field set submitted when a provider lists a new venue.
type MandapInput struct {
	MandapName                string   `json:"mandapName" form:"mandapName" binding:"required"`
	Description               string   `json:"description" form:"description"`
	City                      string   `json:"city" form:"city"`
	State                     string   `json:"state" form:"state"`
	Pincode                   string   `json:"pincode" form:"pincode"`
	FullAddress               string   `json:"fullAddress" form:"fullAddress"`
	AvailableDates            []string `json:"availableDates" form:"availableDates"`
	VenueType                 []string `json:"venueType" form:"venueType"`
	PenaltyChargesPerHour     float64  `json:"penaltyChargesPerHour" form:"penaltyChargesPerHour"`
	CancellationPolicy        string   `json:"cancellationPolicy" form:"cancellationPolicy"`
	GuestCapacity             int      `json:"guestCapacity" form:"guestCapacity"`
	VenuePricing              float64  `json:"venuePricing" form:"venuePricing"`
	SecurityDeposit           float64  `json:"securityDeposit" form:"securityDeposit"`
	SecurityDepositType       string   `json:"securityDepositType" form:"securityDepositType"`
	Amenities                 []string `json:"amenities" form:"amenities"`
	OutdoorFacilities         []string `json:"outdoorFacilities" form:"outdoorFacilities"`
	PaymentMethods            []string `json:"paymentMethods" form:"paymentMethods"`
	IsExternalCateringAllowed bool     `json:"isExternalCateringAllowed" form:"isExternalCateringAllowed"`
	AdvancePayment            float64  `json:"advancePayment" form:"advancePayment"`
}

// VenueAddress is the view-side address.
type VenueAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// VenueView is the normalized venue rendered by the dashboard. Each field
// has exactly one name.
type VenueView struct {
	ID                      string       `json:"id"`
	Name                    string       `json:"name"`
	Description             string       `json:"description"`
	Address                 VenueAddress `json:"address"`
	Capacity                int          `json:"capacity"`
	Price                   float64      `json:"price"`
	Images                  []string     `json:"images"`
	Amenities               []string     `json:"amenities"`
	VenueTypes              []string     `json:"venueTypes"`
	SecurityDeposit         float64      `json:"securityDeposit"`
	CancellationPolicy      string       `json:"cancellationPolicy"`
	PenaltyChargesPerHour   float64      `json:"penaltyChargesPerHour"`
	ExternalCateringAllowed bool         `json:"externalCateringAllowed"`
	CreatedAt               time.Time    `json:"createdAt"`
}
