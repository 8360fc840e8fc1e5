package handlers

import (
	"errors"
	"net/http"

	"mandapdash/models"
	"mandapdash/services/caterer"
	"mandapdash/views"

	"github.com/gin-gonic/gin"
)

type CatererHandler struct {
	clients Clients
}

func NewCatererHandler(clients Clients) *CatererHandler {
	return &CatererHandler{clients: clients}
}

// ListCaterersHandler lists every caterer, or those of one venue when the
// route carries a mandap id.
func (h *CatererHandler) ListCaterersHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	list := views.NewCatererList(c.Request.Context(), h.clients.Caterers(sess), c.Param("id"), sess.Notifier, getLogger(c))
	defer list.Close()

	state, err := list.Load()
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"status":         state.Status,
		"failedSections": state.FailedSections,
		"caterers":       state.Items,
	})
}

func (h *CatererHandler) GetCatererHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	ct, err := h.clients.Caterers(sess).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"caterer": ct})
}

// CreateCatererHandler takes the caterer as JSON, or as a multipart "caterer"
// field next to a categoryImage file.
func (h *CatererHandler) CreateCatererHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	var input models.CatererInput
	if err := bindPayload(c, "caterer", &input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid caterer", err.Error())
		return
	}
	image, closeImage, err := firstUpload(c, "categoryImage")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer closeImage()

	ct, err := h.clients.Caterers(sess).Create(c.Request.Context(), input, image)
	if errors.Is(err, caterer.ErrNoMenuCategory) {
		respondError(c, http.StatusBadRequest, "Menu category is required", err.Error())
		return
	}
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"caterer": ct})
}

func (h *CatererHandler) UpdateCatererHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	fields, err := bindFields(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid update", err.Error())
		return
	}
	image, closeImage, err := firstUpload(c, "categoryImage")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer closeImage()

	ct, err := h.clients.Caterers(sess).Update(c.Request.Context(), c.Param("id"), fields, image)
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"caterer": ct})
}

func (h *CatererHandler) DeleteCatererHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	list := views.NewCatererList(c.Request.Context(), h.clients.Caterers(sess), "", sess.Notifier, getLogger(c))
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
