package views

import (
	"testing"
	"time"

	"mandapdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToVenueView(t *testing.T) {
	created := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	v := ToVenueView(models.Mandap{
		ID:            "m1",
		MandapName:    "Lotus Hall",
		MandapDesc:    "Riverside",
		GuestCapacity: 450,
		VenuePricing:  125000,
		Address: &models.MandapAddress{
			FullAddress: "12 MG Road",
			City:        "Pune",
			State:       "MH",
			PinCode:     "411001",
		},
		VenueType: []string{"Banquet"},
		CreatedAt: created,
	})

	assert.Equal(t, "m1", v.ID)
	assert.Equal(t, "Lotus Hall", v.Name)
	assert.Equal(t, "Riverside", v.Description)
	assert.Equal(t, 450, v.Capacity)
	assert.Equal(t, 125000.0, v.Price)
	assert.Equal(t, models.VenueAddress{Street: "12 MG Road", City: "Pune", State: "MH", Pincode: "411001"}, v.Address)
	assert.Equal(t, []string{"Banquet"}, v.VenueTypes)
	assert.NotNil(t, v.Images)
	assert.NotNil(t, v.Amenities)
	assert.Equal(t, created, v.CreatedAt)
}

func TestToVenueViewClampsAndDefaults(t *testing.T) {
	v := ToVenueView(models.Mandap{GuestCapacity: -5, VenuePricing: -1})
	assert.Zero(t, v.Capacity)
	assert.Zero(t, v.Price)
	assert.Equal(t, models.VenueAddress{}, v.Address)
	assert.Empty(t, v.Images)

	assert.NotNil(t, ToVenueViews(nil))
}

func TestToBookingView(t *testing.T) {
	b := models.Booking{
		ID:            "b1",
		Mandap:        models.Ref{ID: "m1", MandapName: "Lotus Hall"},
		User:          models.Ref{ID: "u1", Name: "Asha", Email: "asha@example.com"},
		OrderDates:    []string{"2025-02-10", "2025-02-11", "2025-02-12"},
		TotalAmount:   3000,
		PaymentStatus: models.PaymentCompleted,
		CreatedAt:     time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
	}
	v, err := ToBookingView(b)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-10", v.StartDate)
	assert.Equal(t, "2025-02-12", v.EndDate)
	assert.Equal(t, models.BookingCompleted, v.Status)
	assert.Equal(t, "Lotus Hall", v.MandapName)
	assert.Equal(t, "Asha", v.CustomerName)

	single, err := ToBookingView(models.Booking{
		OrderDates:    []string{"2025-05-01"},
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, single.StartDate, single.EndDate)
	assert.Equal(t, models.BookingConfirmed, single.Status)
}

func TestToBookingViewWithoutDates(t *testing.T) {
	_, err := ToBookingView(models.Booking{ID: "b1"})
	assert.ErrorIs(t, err, ErrNoOccupiedDates)
}

func TestToBookingViewWithoutCreationTime(t *testing.T) {
	_, err := ToBookingView(models.Booking{ID: "b1", OrderDates: []string{"2025-05-01"}, TotalAmount: 500})
	assert.ErrorIs(t, err, ErrNoCreatedAt)
}
