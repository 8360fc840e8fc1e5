package handlers

import (
	"net/http"

	"mandapdash/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check. The service itself is
// up whenever it answers, so the status code is always 200.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	status := "ok"
	if !health.Healthy() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "dependencies": health})
}
