package handlers

import (
	"net/http"

	"grocli/models"
	"grocli/services/invitation"
	"grocli/utils"

	"github.com/gin-gonic/gin"
)

// InvitationHandler exposes list invitation creation.
type InvitationHandler struct {
	Service invitation.InvitationService
}

func NewInvitationHandler(svc invitation.InvitationService) *InvitationHandler {
	return &InvitationHandler{Service: svc}
}

type createInvitationRequest struct {
	ListID      string `json:"listId" binding:"required"`
	ListName    string `json:"listName" binding:"required"`
	SenderName  string `json:"senderName" binding:"required"`
	RecipientID string `json:"recipientId" binding:"required"`
}

// CreateInvitationHandler persists an invitation and schedules the
// recipient's push notification.
func (h *InvitationHandler) CreateInvitationHandler(c *gin.Context) {
	if authenticatedUserID(c) == "" {
		return
	}

	var req createInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	inv := &models.Invitation{
		ListID:      req.ListID,
		ListName:    req.ListName,
		SenderName:  req.SenderName,
		RecipientID: req.RecipientID,
	}
	id, err := h.Service.Invite(c.Request.Context(), inv)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create invitation", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invitationId": id})
}
