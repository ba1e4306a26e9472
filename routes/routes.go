package routes

import (
	"time"

	"grocli/handlers"
	"grocli/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers authenticated per-user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/users/me")
	{
		api.Use(middleware.FirebaseAuthMiddleware(authClient))
		api.PUT("/fcm-token", hb.RegisterFCMTokenHandler)
		api.DELETE("/fcm-token", hb.RemoveFCMTokenHandler)
	}
}

// RegisterInvitationRoutes registers invitation endpoints.
func RegisterInvitationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/invitations")
	{
		api.Use(middleware.FirebaseAuthMiddleware(authClient))
		api.POST("", hb.CreateInvitationHandler)
	}
}

// RegisterInternalRoutes registers endpoints for platform hooks and
// operators. These are expected to be reachable only from inside the
// deployment network.
func RegisterInternalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	internal := r.Group("/internal")
	{
		internal.POST("/auth/events", hb.AuthEventHandler)
		internal.POST("/dispatch/run", hb.RunDispatchHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb, authClient)
	RegisterInvitationRoutes(r, hb, authClient)
	RegisterInternalRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
