package routes

import (
	"admindash_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP routes. Everything except login sits
// behind the admin session gate.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, adminAuth gin.HandlerFunc) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(adminAuth)
	{
		appHandlers.Users.RegisterRoutes(protected)
		appHandlers.Subscriptions.RegisterRoutes(protected)
		appHandlers.Tickets.RegisterRoutes(protected)
		appHandlers.Activity.RegisterRoutes(protected)
	}
}
