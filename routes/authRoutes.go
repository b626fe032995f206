package routes

import "github.com/gin-gonic/gin"

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, d Deps) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Controller.Register)
		auth.POST("/login", d.Controller.Login)
		auth.GET("/me", d.requireAuth(), d.Controller.Me)
	}
}
