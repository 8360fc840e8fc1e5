package views

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"mandapdash/models"
)

var errBackend = errors.New("backend down")

type fakeVenues struct {
	mandaps   []models.Mandap
	listErr   error
	deleteErr error
	block     chan struct{}

	mu      sync.Mutex
	deleted []string
}

func (f *fakeVenues) List(ctx context.Context) ([]models.Mandap, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.mandaps, f.listErr
}

func (f *fakeVenues) Delete(_ context.Context, id string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return json.RawMessage(`{"message":"deleted"}`), nil
}

type fakeBookings struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookings) List(context.Context) ([]models.Booking, error) {
	return f.bookings, f.err
}

type fakeCaterers struct {
	all, byMandap []models.Caterer
	gotMandap     string
}

func (f *fakeCaterers) List(context.Context) ([]models.Caterer, error) { return f.all, nil }

func (f *fakeCaterers) ListByMandap(_ context.Context, id string) ([]models.Caterer, error) {
	f.gotMandap = id
	return f.byMandap, nil
}

func (f *fakeCaterers) Delete(context.Context, string) (json.RawMessage, error) { return nil, nil }

type fakeRooms struct {
	rooms []models.Room
}

func (f *fakeRooms) List(context.Context) ([]models.Room, error) { return f.rooms, nil }

func (f *fakeRooms) Delete(context.Context, string) (json.RawMessage, error) { return nil, nil }
