package routes

import (
	"github.com/gin-gonic/gin"

	"tenantguard-be/middlewares"
)

// ReportRoutes sets up reports, their contact timeline and confirmations
func ReportRoutes(r *gin.Engine, d Deps) {
	reports := r.Group("/reports")
	{
		reports.POST("", d.requireAuth(),
			middlewares.RateLimit(d.Limiter, middlewares.ByUser("reports"), d.ReportDailyLimit, d.Logger),
			d.Controller.CreateReport)
		reports.GET("/property/:propertyId", d.Controller.ReportsByProperty)
		reports.GET("/:id", d.Controller.GetReport)
		reports.PATCH("/:id/status", d.requireAuth(), d.Controller.UpdateReportStatus)
		reports.GET("/:id/contacts", d.Controller.ReportContacts)
		reports.POST("/:id/contact", d.requireAuth(), d.Controller.AddReportContact)
		reports.GET("/:id/confirmations", d.Controller.ReportConfirmations)
		reports.POST("/confirm/:id/confirm", d.requireAuth(), d.Controller.ConfirmReport)
	}

	r.POST("/confirm/reports/:id/confirm", d.requireAuth(), d.Controller.ConfirmReport)
}
