package handlers

import (
	"net/http"

	"grocli/models"
	"grocli/services/user"
	"grocli/utils"

	"github.com/gin-gonic/gin"
)

// AuthEventHandler mirrors auth lifecycle webhooks into the document store.
type AuthEventHandler struct {
	Service user.UserService
}

func NewAuthEventHandler(svc user.UserService) *AuthEventHandler {
	return &AuthEventHandler{Service: svc}
}

// HandleAuthEvent processes a user.created or user.deleted event.
func (h *AuthEventHandler) HandleAuthEvent(c *gin.Context) {
	var ev models.AuthEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.HandleAuthEvent(c.Request.Context(), ev); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process auth event", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event processed"})
}
