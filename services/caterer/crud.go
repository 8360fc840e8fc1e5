package caterer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"mandapdash/api"
	"mandapdash/models"

	"go.uber.org/zap"
)

const imageField = "categoryImage"

// Create adds a caterer to a venue. The backend takes one menu category per
// request, so only the first entry of MenuCategories is submitted.
func (s *DefaultCatererService) Create(ctx context.Context, input models.CatererInput, categoryImage *api.File) (*models.Caterer, error) {
	if len(input.MenuCategories) == 0 {
		return nil, ErrNoMenuCategory
	}
	if n := len(input.MenuCategories); n > 1 {
		s.logger.Warn("Only the first menu category is submitted",
			zap.String("mandapId", input.MandapID),
			zap.Int("dropped", n-1))
	}

	form := api.NewForm()
	fields := []struct {
		key   string
		value any
	}{
		{"mandapId", input.MandapID},
		{"catererName", input.CatererName},
		{"menuCategory", input.MenuCategories[0]},
		{"foodType", input.FoodType},
		{"isCustomizable", input.IsCustomizable},
	}
	for _, f := range fields {
		if err := form.Set(f.key, f.value); err != nil {
			return nil, err
		}
	}
	if input.CustomizableItems != nil {
		if err := form.Set("customizableItems", input.CustomizableItems); err != nil {
			return nil, err
		}
	}
	if err := form.Set("hasTastingSession", input.HasTastingSession); err != nil {
		return nil, err
	}
	if categoryImage != nil {
		form.AddFiles(imageField, *categoryImage)
	}

	data, err := s.client.Do(ctx, http.MethodPost, "/add-caterer", form)
	if err != nil {
		return nil, err
	}
	var out models.Caterer
	if err := api.DecodeRecord(data, "caterer", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DefaultCatererService) Update(ctx context.Context, id string, fields map[string]any, categoryImage *api.File) (*models.Caterer, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	form := api.NewForm()
	if err := form.SetAll(fields); err != nil {
		return nil, fmt.Errorf("caterer update: %w", err)
	}
	if categoryImage != nil {
		form.AddFiles(imageField, *categoryImage)
	}

	data, err := s.client.Do(ctx, http.MethodPut, "/update-caterer/"+pid, form)
	if err != nil {
		return nil, err
	}
	var out models.Caterer
	if err := api.DecodeRecord(data, "caterer", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DefaultCatererService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodDelete, "/delete-caterer/"+pid, nil)
}

func (s *DefaultCatererService) GetByID(ctx context.Context, id string) (*models.Caterer, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Do(ctx, http.MethodGet, "/get-caterer/"+pid, nil)
	if err != nil {
		return nil, err
	}
	var out models.Caterer
	if err := api.DecodeKey(data, "caterer", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every caterer across the provider's venues.
func (s *DefaultCatererService) List(ctx context.Context) ([]models.Caterer, error) {
	return s.list(ctx, "/get-all-caterers")
}

// ListByMandap returns the caterers of one venue.
func (s *DefaultCatererService) ListByMandap(ctx context.Context, mandapID string) ([]models.Caterer, error) {
	pid, err := api.PathID(mandapID)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, "/get-all-caterer/"+pid)
}

func (s *DefaultCatererService) list(ctx context.Context, path string) ([]models.Caterer, error) {
	data, err := s.client.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out []models.Caterer
	if err := api.DecodeKey(data, "caterers", &out); err != nil {
		return nil, err
	}
	return out, nil
}
