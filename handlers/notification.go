package handlers

import (
	"net/http"

	"mandapdash/models"
	"mandapdash/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetNotificationsHandler drains the session's pending notifications. Each
// notification is returned once.
func GetNotificationsHandler(c *gin.Context) {
	sess, ok := requestSession(c)
	if !ok {
		return
	}
	items := []models.Notification{}
	if d, ok := sess.Notifier.(notification.Drainer); ok {
		drained, err := d.Drain(c.Request.Context())
		if err != nil {
			getLogger(c).Error("Failed to drain notifications", zap.Error(err))
			respondError(c, http.StatusServiceUnavailable, "Failed to fetch notifications", err.Error())
			return
		}
		if drained != nil {
			items = drained
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}
