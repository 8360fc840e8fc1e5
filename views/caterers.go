package views

import (
	"context"
	"encoding/json"

	"mandapdash/models"
	"mandapdash/services/notification"

	"go.uber.org/zap"
)

// CatererSource is what the caterer list needs from the backend. An empty
// mandap id lists every caterer of the provider.
type CatererSource interface {
	List(ctx context.Context) ([]models.Caterer, error)
	ListByMandap(ctx context.Context, mandapID string) ([]models.Caterer, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

type CatererList struct {
	resourceList[models.Caterer]
	source   CatererSource
	mandapID string
}

func NewCatererList(parent context.Context, source CatererSource, mandapID string, notifier notification.Notifier, logger *zap.Logger) *CatererList {
	l := &CatererList{source: source, mandapID: mandapID}
	l.setup(parent, "caterer", SectionCaterers, func(c models.Caterer) string { return c.ID }, notifier, logger)
	return l
}

func (l *CatererList) Load() (ListState[models.Caterer], error) {
	return l.load(func(ctx context.Context) ([]models.Caterer, error) {
		if l.mandapID != "" {
			return l.source.ListByMandap(ctx, l.mandapID)
		}
		return l.source.List(ctx)
	})
}

func (l *CatererList) Delete(id string, confirm Confirmer) (bool, error) {
	return l.remove(id, confirm, func(ctx context.Context, id string) error {
		_, err := l.source.Delete(ctx, id)
		return err
	})
}
