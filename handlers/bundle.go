package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Token endpoints.
	RegisterFCMTokenHandler gin.HandlerFunc
	RemoveFCMTokenHandler   gin.HandlerFunc

	// Invitation endpoints.
	CreateInvitationHandler gin.HandlerFunc

	// Internal endpoints.
	AuthEventHandler   gin.HandlerFunc
	RunDispatchHandler gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}
