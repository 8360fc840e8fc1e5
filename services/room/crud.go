package room

import (
	"context"
	"encoding/json"
	"net/http"

	"mandapdash/api"
	"mandapdash/models"
)

const (
	acImagesField    = "acRoomImages"
	nonAcImagesField = "nonAcRoomImages"
)

// roomForm attaches whichever room classes are present plus both image sets.
func roomForm(input models.RoomInput, withMandap bool, acImages, nonAcImages []api.File) (*api.Form, error) {
	form := api.NewForm()
	if withMandap {
		if err := form.Set("mandapId", input.MandapID); err != nil {
			return nil, err
		}
	}
	if input.AcRoom != nil {
		if err := form.Set("AcRoom", input.AcRoom); err != nil {
			return nil, err
		}
	}
	if input.NonAcRoom != nil {
		if err := form.Set("NonAcRoom", input.NonAcRoom); err != nil {
			return nil, err
		}
	}
	form.AddFiles(acImagesField, acImages...)
	form.AddFiles(nonAcImagesField, nonAcImages...)
	return form, nil
}

func (s *DefaultRoomService) Create(ctx context.Context, input models.RoomInput, acImages, nonAcImages []api.File) (*models.Room, error) {
	form, err := roomForm(input, true, acImages, nonAcImages)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Do(ctx, http.MethodPost, "/add-room", form)
	if err != nil {
		return nil, err
	}
	var out models.Room
	if err := api.DecodeRecord(data, "room", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DefaultRoomService) List(ctx context.Context) ([]models.Room, error) {
	data, err := s.client.Do(ctx, http.MethodGet, "/get-all-rooms", nil)
	if err != nil {
		return nil, err
	}
	var out []models.Room
	if err := api.DecodeKey(data, "rooms", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DefaultRoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Do(ctx, http.MethodGet, "/get-room/"+pid, nil)
	if err != nil {
		return nil, err
	}
	var out models.Room
	if err := api.DecodeKey(data, "room", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the room classes present in input. The venue of a room
// cannot be changed.
func (s *DefaultRoomService) Update(ctx context.Context, id string, input models.RoomInput, acImages, nonAcImages []api.File) (*models.Room, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	form, err := roomForm(input, false, acImages, nonAcImages)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Do(ctx, http.MethodPut, "/update-room/"+pid, form)
	if err != nil {
		return nil, err
	}
	var out models.Room
	if err := api.DecodeRecord(data, "room", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DefaultRoomService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodDelete, "/delete-room/"+pid, nil)
}
