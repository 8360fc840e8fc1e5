package booking

import (
	"context"
	"net/http"

	"mandapdash/api"
	"mandapdash/models"
)

// List returns every booking placed on the provider's venues.
func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	data, err := s.client.Do(ctx, http.MethodGet, "/bookings", nil)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	if err := api.DecodeKey(data, "bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Do(ctx, http.MethodGet, "/booking/get-booking/"+pid, nil)
	if err != nil {
		return nil, err
	}
	var out models.Booking
	if err := api.DecodeRecord(data, "booking", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
