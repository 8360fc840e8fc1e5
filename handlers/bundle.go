package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Session middleware guarding the /api routes except sign-in.
	SessionMiddleware gin.HandlerFunc

	// Session endpoints
	CreateSessionHandler gin.HandlerFunc
	DeleteSessionHandler gin.HandlerFunc
	NotificationsHandler gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc

	// Dashboard
	DashboardHandler gin.HandlerFunc

	// Mandap endpoints
	ListMandapsHandler  gin.HandlerFunc
	GetMandapHandler    gin.HandlerFunc
	CreateMandapHandler gin.HandlerFunc
	UpdateMandapHandler gin.HandlerFunc
	DeleteMandapHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler gin.HandlerFunc
	GetBookingHandler   gin.HandlerFunc

	// Caterer endpoints
	ListCaterersHandler  gin.HandlerFunc
	GetCatererHandler    gin.HandlerFunc
	CreateCatererHandler gin.HandlerFunc
	UpdateCatererHandler gin.HandlerFunc
	DeleteCatererHandler gin.HandlerFunc

	// Room endpoints
	ListRoomsHandler  gin.HandlerFunc
	GetRoomHandler    gin.HandlerFunc
	CreateRoomHandler gin.HandlerFunc
	UpdateRoomHandler gin.HandlerFunc
	DeleteRoomHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler against the given backend clients and
// session store.
func NewHandlerBundle(clients Clients, sessions *SessionHandler, sessionMiddleware gin.HandlerFunc) *HandlerBundle {
	dashboardHandler := NewDashboardHandler(clients)
	mandapHandler := NewMandapHandler(clients)
	bookingHandler := NewBookingHandler(clients)
	catererHandler := NewCatererHandler(clients)
	roomHandler := NewRoomHandler(clients)

	return &HandlerBundle{
		SessionMiddleware: sessionMiddleware,

		CreateSessionHandler: sessions.CreateSessionHandler,
		DeleteSessionHandler: sessions.DeleteSessionHandler,
		NotificationsHandler: GetNotificationsHandler,

		HealthHandler:    HealthHandler,
		DashboardHandler: dashboardHandler.GetDashboardHandler,

		ListMandapsHandler:  mandapHandler.ListMandapsHandler,
		GetMandapHandler:    mandapHandler.GetMandapHandler,
		CreateMandapHandler: mandapHandler.CreateMandapHandler,
		UpdateMandapHandler: mandapHandler.UpdateMandapHandler,
		DeleteMandapHandler: mandapHandler.DeleteMandapHandler,

		ListBookingsHandler: bookingHandler.ListBookingsHandler,
		GetBookingHandler:   bookingHandler.GetBookingHandler,

		ListCaterersHandler:  catererHandler.ListCaterersHandler,
		GetCatererHandler:    catererHandler.GetCatererHandler,
		CreateCatererHandler: catererHandler.CreateCatererHandler,
		UpdateCatererHandler: catererHandler.UpdateCatererHandler,
		DeleteCatererHandler: catererHandler.DeleteCatererHandler,

		ListRoomsHandler:  roomHandler.ListRoomsHandler,
		GetRoomHandler:    roomHandler.GetRoomHandler,
		CreateRoomHandler: roomHandler.CreateRoomHandler,
		UpdateRoomHandler: roomHandler.UpdateRoomHandler,
		DeleteRoomHandler: roomHandler.DeleteRoomHandler,
	}
}
