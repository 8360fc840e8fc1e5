package room

import (
	"context"
	"encoding/json"

	"mandapdash/api"
	"mandapdash/models"
)

// RoomService is the client of the backend's room endpoints.
type RoomService interface {
	Create(ctx context.Context, input models.RoomInput, acImages, nonAcImages []api.File) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	Update(ctx context.Context, id string, input models.RoomInput, acImages, nonAcImages []api.File) (*models.Room, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

// DefaultRoomService talks to the backend over HTTP.
type DefaultRoomService struct {
	client *api.Client
}

func NewDefaultRoomService(cfg api.Config, sess api.Session) *DefaultRoomService {
	return &DefaultRoomService{client: api.NewClient("room", cfg, sess)}
}
