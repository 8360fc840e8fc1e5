package views

import (
	"context"
	"encoding/json"

	"mandapdash/models"
	"mandapdash/services/notification"

	"go.uber.org/zap"
)

// VenueSource is what the venue list needs from the backend.
type VenueSource interface {
	List(ctx context.Context) ([]models.Mandap, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

// VenueList backs the "my venues" page: load, search, filter and delete.
type VenueList struct {
	resourceList[models.VenueView]
	source VenueSource
}

func NewVenueList(parent context.Context, source VenueSource, notifier notification.Notifier, logger *zap.Logger) *VenueList {
	l := &VenueList{source: source}
	l.setup(parent, "mandap", SectionVenues, func(v models.VenueView) string { return v.ID }, notifier, logger)
	return l
}

func (l *VenueList) Load() (ListState[models.VenueView], error) {
	return l.load(func(ctx context.Context) ([]models.VenueView, error) {
		ms, err := l.source.List(ctx)
		if err != nil {
			return nil, err
		}
		return ToVenueViews(ms), nil
	})
}

// Filtered applies the search term and capacity filter to the loaded venues.
func (l *VenueList) Filtered(term string, filter CapacityFilter) []models.VenueView {
	return FilterVenues(l.Items(), term, filter)
}

func (l *VenueList) Delete(id string, confirm Confirmer) (bool, error) {
	return l.remove(id, confirm, func(ctx context.Context, id string) error {
		_, err := l.source.Delete(ctx, id)
		return err
	})
}
