package routes

import "github.com/gin-gonic/gin"

func UserRoutes(r *gin.Engine, d Deps) {
	users := r.Group("/users", d.requireAuth())
	{
		users.GET("/me/reports", d.Controller.MyReports)
	}
}
