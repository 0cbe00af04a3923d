// Package routes wires controllers to URL paths.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/deniz/technexus/internal/app/controllers"
	"github.com/deniz/technexus/internal/middleware"
)

// SetupRouter configures all application routes. Trailing slashes on the
// collection endpoints are part of the public API.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	eventController *controllers.EventController,
	opportunityController *controllers.OpportunityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Auth routes ---
	router.POST("/token", authController.Login)
	router.POST("/admin/create", authController.CreateAdmin)

	// --- User routes ---
	users := router.Group("/users")
	{
		users.POST("/", userController.CreateUser)

		me := users.Group("/me")
		me.Use(authMiddleware.RequireUser())
		{
			me.GET("", userController.GetMe)
			me.PUT("", userController.UpdateMe)
			me.POST("/save-event/:id", userController.ToggleSaveEvent)
			me.POST("/save-opportunity/:id", userController.ToggleSaveOpportunity)
			me.GET("/saved-events", userController.SavedEvents)
			me.GET("/saved-opportunities", userController.SavedOpportunities)
		}
	}

	// --- Event routes ---
	events := router.Group("/events")
	{
		events.GET("/", eventController.List)
		events.GET("/search/", eventController.Search)
		events.GET("/stats/", eventController.Stats)
		events.GET("/:id", eventController.Get)
		events.POST("/:id/like", eventController.Like)
		events.POST("/:id/register", eventController.Register)

		eventsAdmin := events.Group("")
		eventsAdmin.Use(authMiddleware.RequireAdmin())
		{
			eventsAdmin.POST("/", eventController.Create)
			eventsAdmin.PUT("/:id", eventController.Update)
			eventsAdmin.DELETE("/:id", eventController.Delete)
		}
	}

	// --- Opportunity routes ---
	opportunities := router.Group("/opportunities")
	{
		opportunities.GET("/", opportunityController.List)
		opportunities.GET("/search/", opportunityController.Search)
		opportunities.GET("/stats/", opportunityController.Stats)
		opportunities.GET("/:id", opportunityController.Get)
		opportunities.POST("/:id/like", opportunityController.Like)
		opportunities.POST("/:id/apply", opportunityController.Apply)

		opportunitiesAdmin := opportunities.Group("")
		opportunitiesAdmin.Use(authMiddleware.RequireAdmin())
		{
			opportunitiesAdmin.POST("/", opportunityController.Create)
			opportunitiesAdmin.PUT("/:id", opportunityController.Update)
			opportunitiesAdmin.DELETE("/:id", opportunityController.Delete)
		}
	}
}
