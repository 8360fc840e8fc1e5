package handlers

import (
	"net/http"

	"mandapdash/models"
	"mandapdash/views"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	clients Clients
}

func NewRoomHandler(clients Clients) *RoomHandler {
	return &RoomHandler{clients: clients}
}

func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	list := views.NewRoomList(c.Request.Context(), h.clients.Rooms(sess), sess.Notifier, getLogger(c))
	defer list.Close()

	state, err := list.Load()
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"status":         state.Status,
		"failedSections": state.FailedSections,
		"rooms":          state.Items,
	})
}

func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	r, err := h.clients.Rooms(sess).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"room": r})
}

// CreateRoomHandler takes the rooms as JSON, or as a multipart "room" field
// next to acRoomImages and nonAcRoomImages files.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	h.saveRoom(c, "", http.StatusCreated)
}

func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	h.saveRoom(c, c.Param("id"), http.StatusOK)
}

func (h *RoomHandler) saveRoom(c *gin.Context, id string, status int) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	var input models.RoomInput
	if err := bindPayload(c, "room", &input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid room", err.Error())
		return
	}
	if id == "" && input.MandapID == "" {
		respondError(c, http.StatusBadRequest, "Invalid room", "mandapId is required")
		return
	}
	acImages, closeAc, err := uploadedFiles(c, "acRoomImages")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer closeAc()
	nonAcImages, closeNonAc, err := uploadedFiles(c, "nonAcRoomImages")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer closeNonAc()

	svc := h.clients.Rooms(sess)
	var r *models.Room
	if id == "" {
		r, err = svc.Create(c.Request.Context(), input, acImages, nonAcImages)
	} else {
		r, err = svc.Update(c.Request.Context(), id, input, acImages, nonAcImages)
	}
	if err != nil {
		respondUpstream(c, err)
		return
	}
	respond(c, status, gin.H{"room": r})
}

func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	list := views.NewRoomList(c.Request.Context(), h.clients.Rooms(sess), sess.Notifier, getLogger(c))
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
