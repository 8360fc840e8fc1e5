package mandap

import (
	"context"
	"encoding/json"

	"mandapdash/api"
	"mandapdash/models"
)

// MandapService is the client of the backend's venue endpoints.
type MandapService interface {
	Create(ctx context.Context, input models.MandapInput, venueImages []api.File) (*models.Mandap, error)
	List(ctx context.Context) ([]models.Mandap, error)
	GetByID(ctx context.Context, id string) (*models.Mandap, error)
	Update(ctx context.Context, id string, fields map[string]any, venueImages []api.File) (*models.Mandap, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

// DefaultMandapService talks to the backend over HTTP.
type DefaultMandapService struct {
	client *api.Client
}

func NewDefaultMandapService(cfg api.Config, sess api.Session) *DefaultMandapService {
	return &DefaultMandapService{client: api.NewClient("mandap", cfg, sess)}
}
