package routes

import (
	"github.com/gin-gonic/gin"

	"tenantguard-be/middlewares"
	"tenantguard-be/models"
)

// PropertyRoutes sets up property browsing, intake, claims and the landlord
// profile route
func PropertyRoutes(r *gin.Engine, d Deps) {
	props := r.Group("/properties")
	{
		props.GET("", d.Controller.ListProperties)
		props.GET("/search", d.Controller.SearchProperties)
		props.GET("/:id", d.Controller.GetProperty)
		props.GET("/:id/summary", d.Controller.PropertySummary)
		props.GET("/:id/alerts", d.Controller.PropertyAlerts)
		props.GET("/:id/claim-status", d.optionalAuth(), d.Controller.ClaimStatus)
		props.GET("/:id/landlordContact", d.optionalAuth(), d.Controller.LandlordContact)

		props.POST("", d.requireAuth(), d.Controller.CreateProperty)
		props.POST("/:id/claim", d.requireAuth(), d.Controller.ClaimResidence)
		props.PATCH("/:id/claims/:userId", d.requireAuth(),
			middlewares.RequireRole(models.RoleLandlord), d.Controller.DecideClaim)
	}

	r.POST("/landlords", d.requireAuth(), middlewares.RequireRole(models.RoleLandlord), d.Controller.CreateLandlord)
}
