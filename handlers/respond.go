package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"mandapdash/api"
	"mandapdash/middleware"
	"mandapdash/models"
	"mandapdash/utils"
	"mandapdash/views"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type errorBody struct {
	utils.ErrorResponse
	Notifications []models.Notification `json:"notifications,omitempty"`
}

// pendingNotifications drains the per-request collector. Sessions backed by
// the flash store are polled separately.
func pendingNotifications(c *gin.Context) []models.Notification {
	col, ok := middleware.Collector(c)
	if !ok {
		return nil
	}
	items, _ := col.Drain(c.Request.Context())
	return items
}

// respond writes body, adding any collected notifications.
func respond(c *gin.Context, status int, body gin.H) {
	if items := pendingNotifications(c); len(items) > 0 {
		body["notifications"] = items
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message, details string) {
	getLogger(c).Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, errorBody{
		ErrorResponse: utils.ErrorResponse{Message: message, Details: details},
		Notifications: pendingNotifications(c),
	})
}

// respondUpstream maps a client error to a response: the backend's status
// and message for backend failures, 502 for bodies that cannot be decoded and
// 400 for local validation errors.
func respondUpstream(c *gin.Context, err error) {
	if apiErr, ok := api.AsError(err); ok {
		respondError(c, apiErr.HTTPStatus(), apiErr.Message, apiErr.Error())
		return
	}
	switch {
	case errors.Is(err, api.ErrMissingID):
		respondError(c, http.StatusBadRequest, "Missing id", err.Error())
	case errors.Is(err, api.ErrBadResponse), errors.Is(err, api.ErrMissingPayload):
		respondError(c, http.StatusBadGateway, "Unexpected response from server", err.Error())
	case errors.Is(err, views.ErrViewClosed):
		respondError(c, http.StatusServiceUnavailable, "Request cancelled", err.Error())
	default:
		respondError(c, http.StatusBadRequest, "Invalid request", err.Error())
	}
}

func requestSession(c *gin.Context) (api.Session, bool) {
	sess, ok := middleware.APISession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
	}
	return sess, ok
}

// confirmFromQuery confirms a deletion when the caller passed confirm=true.
// The prompt that was refused is kept for the 409 response.
func confirmFromQuery(c *gin.Context, prompt *string) views.Confirmer {
	return views.ConfirmFunc(func(p string) bool {
		if c.Query("confirm") == "true" {
			return true
		}
		*prompt = p
		return false
	})
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

// uploadedFiles opens the files posted under field. The returned closer
// must be called once the upstream request is done.
func uploadedFiles(c *gin.Context, field string) ([]api.File, func(), error) {
	noop := func() {}
	if !isMultipart(c) {
		return nil, noop, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	headers := form.File[field]
	files := make([]api.File, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))
	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}
	for _, fh := range headers {
		f, err := openUpload(fh)
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		closers = append(closers, f)
		files = append(files, api.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		})
	}
	return files, closeAll, nil
}

func openUpload(fh *multipart.FileHeader) (multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	return f, nil
}

// firstUpload is uploadedFiles for single-file fields.
func firstUpload(c *gin.Context, field string) (*api.File, func(), error) {
	files, closer, err := uploadedFiles(c, field)
	if err != nil || len(files) == 0 {
		return nil, closer, err
	}
	return &files[0], closer, nil
}

// bindPayload decodes a structured payload either from a JSON body or from
// the JSON-encoded multipart field named field, then validates it.
func bindPayload(c *gin.Context, field string, out any) error {
	if isMultipart(c) {
		if _, err := c.MultipartForm(); err != nil {
			return fmt.Errorf("failed to parse multipart form: %w", err)
		}
		raw := c.PostForm(field)
		if raw == "" {
			return fmt.Errorf("multipart field %q is required", field)
		}
		if err := json.Unmarshal([]byte(raw), out); err != nil {
			return fmt.Errorf("invalid %s payload: %w", field, err)
		}
		return binding.Validator.ValidateStruct(out)
	}
	return c.ShouldBindJSON(out)
}

// bindFields reads a partial update: a JSON object, or every multipart
// value field. Repeated multipart keys become lists.
func bindFields(c *gin.Context) (map[string]any, error) {
	fields := map[string]any{}
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("failed to parse multipart form: %w", err)
		}
		for k, vs := range form.Value {
			if len(vs) == 1 {
				fields[k] = vs[0]
			} else {
				fields[k] = vs
			}
		}
		return fields, nil
	}
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}
