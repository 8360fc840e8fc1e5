package handlers

import (
	"mandapdash/api"
	"mandapdash/services/booking"
	"mandapdash/services/caterer"
	"mandapdash/services/mandap"
	"mandapdash/services/room"
)

// Clients builds the backend resource clients for one request's session.
type Clients interface {
	Mandaps(sess api.Session) mandap.MandapService
	Bookings(sess api.Session) booking.BookingService
	Caterers(sess api.Session) caterer.CatererService
	Rooms(sess api.Session) room.RoomService
}

// BackendClients creates HTTP clients against the configured backend.
type BackendClients struct {
	Config api.Config
}

func (b BackendClients) Mandaps(sess api.Session) mandap.MandapService {
	return mandap.NewDefaultMandapService(b.Config, sess)
}

func (b BackendClients) Bookings(sess api.Session) booking.BookingService {
	return booking.NewDefaultBookingService(b.Config, sess)
}

func (b BackendClients) Caterers(sess api.Session) caterer.CatererService {
	return caterer.NewDefaultCatererService(b.Config, sess)
}

func (b BackendClients) Rooms(sess api.Session) room.RoomService {
	return room.NewDefaultRoomService(b.Config, sess)
}
