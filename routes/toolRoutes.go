package routes

import (
	"github.com/gin-gonic/gin"

	"tenantguard-be/middlewares"
)

// ToolRoutes sets up rent checks, inquiries and media upload
func ToolRoutes(r *gin.Engine, d Deps) {
	rent := r.Group("/rentcheck", d.requireAuth())
	{
		rent.POST("", d.Controller.RentRisk)
		rent.POST("/increase", d.Controller.RentIncrease)
	}

	r.POST("/inquiry", d.optionalAuth(),
		middlewares.RateLimit(d.Limiter, middlewares.ByClient("inquiry"), d.InquiryDailyLimit, d.Logger),
		d.Controller.CreateInquiry)

	r.POST("/upload", d.requireAuth(), d.Controller.Upload)
}
