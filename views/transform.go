package views

import (
	"errors"
	"fmt"

	"mandapdash/models"
)

var (
	// ErrNoOccupiedDates marks a booking whose date range cannot be derived.
	ErrNoOccupiedDates = errors.New("booking has no occupied dates")
	// ErrNoCreatedAt marks a booking that cannot be placed in a month.
	ErrNoCreatedAt = errors.New("booking has no creation time")
)

// ToVenueView is the single adapter from the backend venue shape to the
// dashboard shape.
func ToVenueView(m models.Mandap) models.VenueView {
	v := models.VenueView{
		ID:                      m.ID,
		Name:                    m.MandapName,
		Description:             m.MandapDesc,
		Capacity:                max(m.GuestCapacity, 0),
		Price:                   max(m.VenuePricing, 0),
		Images:                  orEmpty(m.VenueImages),
		Amenities:               orEmpty(m.Amenities),
		VenueTypes:              orEmpty(m.VenueType),
		SecurityDeposit:         m.SecurityDeposit,
		CancellationPolicy:      m.CancellationPolicy,
		PenaltyChargesPerHour:   m.PenaltyChargesPerHour,
		ExternalCateringAllowed: m.IsExternalCateringAllowed,
		CreatedAt:               m.CreatedAt,
	}
	if a := m.Address; a != nil {
		v.Address = models.VenueAddress{
			Street:  a.FullAddress,
			City:    a.City,
			State:   a.State,
			Pincode: a.PinCode.String(),
		}
	}
	return v
}

// ToVenueViews maps a venue list, never returning nil.
func ToVenueViews(ms []models.Mandap) []models.VenueView {
	out := make([]models.VenueView, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToVenueView(m))
	}
	return out
}

// DisplayStatus derives the booking status shown to the provider.
func DisplayStatus(paymentStatus string) string {
	if paymentStatus == models.PaymentCompleted {
		return models.BookingCompleted
	}
	return models.BookingConfirmed
}

// ToBookingView maps a backend booking. The date range is the first and last
// occupied date. A booking without dates or without a creation time is an
// error.
func ToBookingView(b models.Booking) (models.BookingView, error) {
	if len(b.OrderDates) == 0 {
		return models.BookingView{}, fmt.Errorf("booking %s: %w", b.ID, ErrNoOccupiedDates)
	}
	if b.CreatedAt.IsZero() {
		return models.BookingView{}, fmt.Errorf("booking %s: %w", b.ID, ErrNoCreatedAt)
	}
	return models.BookingView{
		ID:            b.ID,
		MandapID:      b.Mandap.ID,
		MandapName:    b.Mandap.MandapName,
		CustomerID:    b.User.ID,
		CustomerName:  b.User.Name,
		CustomerEmail: b.User.Email,
		StartDate:     b.OrderDates[0],
		EndDate:       b.OrderDates[len(b.OrderDates)-1],
		TotalAmount:   b.TotalAmount,
		Status:        DisplayStatus(b.PaymentStatus),
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
