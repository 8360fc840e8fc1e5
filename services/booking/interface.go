package booking

import (
	"context"

	"mandapdash/api"
	"mandapdash/models"
)

// BookingService is the read-only client of the backend's booking endpoints.
type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService talks to the backend over HTTP.
type DefaultBookingService struct {
	client *api.Client
}

func NewDefaultBookingService(cfg api.Config, sess api.Session) *DefaultBookingService {
	return &DefaultBookingService{client: api.NewClient("booking", cfg, sess)}
}
