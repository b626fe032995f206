package routes

import "github.com/gin-gonic/gin"

func RatingRoutes(r *gin.Engine, d Deps) {
	ratings := r.Group("/ratings")
	{
		ratings.POST("", d.requireAuth(), d.Controller.CreateRating)
		ratings.GET("/:propertyId", d.Controller.RatingsByProperty)
	}
}
