package handlers

import (
	"net/http"

	"mandapdash/models"
	"mandapdash/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MandapHandler struct {
	clients Clients
}

func NewMandapHandler(clients Clients) *MandapHandler {
	return &MandapHandler{clients: clients}
}

// ListMandapsHandler returns the provider's venues narrowed by the search
// and filter query parameters.
func (h *MandapHandler) ListMandapsHandler(c *gin.Context) {
	filter, err := views.ParseCapacityFilter(c.Query("filter"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	sess, ok := requestSession(c)
	if !ok {
		return
	}

	list := views.NewVenueList(c.Request.Context(), h.clients.Mandaps(sess), sess.Notifier, getLogger(c))
	defer list.Close()

	state, err := list.Load()
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"status":         state.Status,
		"failedSections": state.FailedSections,
		"total":          len(state.Items),
		"mandaps":        list.Filtered(c.Query("search"), filter),
	})
}

func (h *MandapHandler) GetMandapHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	m, err := h.clients.Mandaps(sess).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"mandap": views.ToVenueView(*m)})
}

// CreateMandapHandler accepts the venue form, as multipart with venueImages
// or as JSON, and forwards it to the backend.
func (h *MandapHandler) CreateMandapHandler(c *gin.Context) {
	logger := getLogger(c)
	sess, ok := requestSession(c)
	if !ok {
		return
	}

	var input models.MandapInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid mandap", err.Error())
		return
	}
	images, closeImages, err := uploadedFiles(c, "venueImages")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer closeImages()

	m, err := h.clients.Mandaps(sess).Create(c.Request.Context(), input, images)
	if err != nil {
		respondUpstream(c, err)
		return
	}
	logger.Info("Mandap created", zap.String("mandapId", m.ID), zap.Int("images", len(images)))
	respond(c, http.StatusCreated, gin.H{"mandap": views.ToVenueView(*m)})
}

// UpdateMandapHandler forwards a partial update.
func (h *MandapHandler) UpdateMandapHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	fields, err := bindFields(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid update", err.Error())
		return
	}
	images, closeImages, err := uploadedFiles(c, "venueImages")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer closeImages()

	m, err := h.clients.Mandaps(sess).Update(c.Request.Context(), c.Param("id"), fields, images)
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"mandap": views.ToVenueView(*m)})
}

// DeleteMandapHandler deletes a venue once the caller confirmed with
// confirm=true; otherwise it answers 409 with the confirmation prompt.
func (h *MandapHandler) DeleteMandapHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	list := views.NewVenueList(c.Request.Context(), h.clients.Mandaps(sess), sess.Notifier, getLogger(c))
	defer list.Close()

	var prompt string
	deleted, err := list.Delete(c.Param("id"), confirmFromQuery(c, &prompt))
	if err != nil {
		respondUpstream(c, err)
		return
	}
	if !deleted {
		respondError(c, http.StatusConflict, prompt, "pass confirm=true to delete")
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
