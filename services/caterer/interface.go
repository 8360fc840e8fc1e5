package caterer

import (
	"context"
	"encoding/json"
	"errors"

	"mandapdash/api"
	"mandapdash/models"

	"go.uber.org/zap"
)

// ErrNoMenuCategory is returned when a caterer is created without a menu.
var ErrNoMenuCategory = errors.New("caterer: at least one menu category is required")

// CatererService is the client of the backend's caterer endpoints.
type CatererService interface {
	Create(ctx context.Context, input models.CatererInput, categoryImage *api.File) (*models.Caterer, error)
	Update(ctx context.Context, id string, fields map[string]any, categoryImage *api.File) (*models.Caterer, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
	GetByID(ctx context.Context, id string) (*models.Caterer, error)
	List(ctx context.Context) ([]models.Caterer, error)
	ListByMandap(ctx context.Context, mandapID string) ([]models.Caterer, error)
}

// DefaultCatererService talks to the backend over HTTP.
type DefaultCatererService struct {
	client *api.Client
	logger *zap.Logger
}

func NewDefaultCatererService(cfg api.Config, sess api.Session) *DefaultCatererService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatererService{
		client: api.NewClient("caterer", cfg, sess),
		logger: logger,
	}
}
