package handlers

import (
	"net/http"

	tokenRepo "grocli/database/repository/token"
	"grocli/utils"

	"github.com/gin-gonic/gin"
)

// TokenHandler manages the caller's FCM token registration.
type TokenHandler struct {
	Tokens tokenRepo.TokenRepository
}

func NewTokenHandler(tokens tokenRepo.TokenRepository) *TokenHandler {
	return &TokenHandler{Tokens: tokens}
}

type tokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterFCMTokenHandler adds a device token for the authenticated user.
func (h *TokenHandler) RegisterFCMTokenHandler(c *gin.Context) {
	userID := authenticatedUserID(c)
	if userID == "" {
		return
	}

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "token is required")
		return
	}

	if err := h.Tokens.Add(c.Request.Context(), userID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token registered"})
}

// RemoveFCMTokenHandler removes a device token for the authenticated user.
func (h *TokenHandler) RemoveFCMTokenHandler(c *gin.Context) {
	userID := authenticatedUserID(c)
	if userID == "" {
		return
	}

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "token is required")
		return
	}

	if err := h.Tokens.Remove(c.Request.Context(), userID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token removed"})
}

// authenticatedUserID pulls the uid set by FirebaseAuthMiddleware, aborting
// with a 500 when the middleware did not run.
func authenticatedUserID(c *gin.Context) string {
	rawUserID, exists := c.Get("userID")
	if !exists || rawUserID == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return ""
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in context"})
		return ""
	}
	return userID
}
