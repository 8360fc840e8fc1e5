package views

import (
	"context"
	"encoding/json"

	"mandapdash/models"
	"mandapdash/services/notification"

	"go.uber.org/zap"
)

// RoomSource is what the room list needs from the backend.
type RoomSource interface {
	List(ctx context.Context) ([]models.Room, error)
	Delete(ctx context.Context, id string) (json.RawMessage, error)
}

type RoomList struct {
	resourceList[models.Room]
	source RoomSource
}

func NewRoomList(parent context.Context, source RoomSource, notifier notification.Notifier, logger *zap.Logger) *RoomList {
	l := &RoomList{source: source}
	l.setup(parent, "room", SectionRooms, func(r models.Room) string { return r.ID }, notifier, logger)
	return l
}

func (l *RoomList) Load() (ListState[models.Room], error) {
	return l.load(l.source.List)
}

func (l *RoomList) Delete(id string, confirm Confirmer) (bool, error) {
	return l.remove(id, confirm, func(ctx context.Context, id string) error {
		_, err := l.source.Delete(ctx, id)
		return err
	})
}
