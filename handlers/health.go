package handlers

import (
	"net/http"

	"grocli/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
