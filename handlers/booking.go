package handlers

import (
	"errors"
	"net/http"

	"mandapdash/models"
	"mandapdash/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	clients Clients
}

func NewBookingHandler(clients Clients) *BookingHandler {
	return &BookingHandler{clients: clients}
}

// ListBookingsHandler returns the provider's bookings in dashboard shape.
// Bookings that cannot be transformed are reported under skipped.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	bs, err := h.clients.Bookings(sess).List(c.Request.Context())
	if err != nil {
		respondUpstream(c, err)
		return
	}

	out := make([]models.BookingView, 0, len(bs))
	skipped := []string{}
	for _, b := range bs {
		v, err := views.ToBookingView(b)
		if err != nil {
			logger.Warn("Skipping malformed booking", zap.String("bookingId", b.ID), zap.Error(err))
			skipped = append(skipped, b.ID)
			continue
		}
		out = append(out, v)
	}
	respond(c, http.StatusOK, gin.H{
		"bookings":  out,
		"analytics": views.ComputeAnalytics(out),
		"skipped":   skipped,
	})
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	b, err := h.clients.Bookings(sess).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstream(c, err)
		return
	}
	v, err := views.ToBookingView(*b)
	switch {
	case errors.Is(err, views.ErrNoOccupiedDates):
		respondError(c, http.StatusUnprocessableEntity, "Booking has no dates", err.Error())
		return
	case err != nil:
		respondError(c, http.StatusUnprocessableEntity, "Booking is incomplete", err.Error())
		return
	}
	respond(c, http.StatusOK, gin.H{"booking": v})
}
