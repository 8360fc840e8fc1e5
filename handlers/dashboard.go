package handlers

import (
	"net/http"

	"mandapdash/views"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	clients Clients
}

func NewDashboardHandler(clients Clients) *DashboardHandler {
	return &DashboardHandler{clients: clients}
}

// GetDashboardHandler renders the overview: venues, bookings, headline
// analytics and monthly buckets.
func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	d := views.NewDashboard(c.Request.Context(), h.clients.Mandaps(sess), h.clients.Bookings(sess), getLogger(c))
	defer d.Close()

	state, err := d.Load()
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"status":         state.Status,
		"failedSections": state.FailedSections,
		"data":           state.Data,
	})
}
