package routes

import "github.com/gin-gonic/gin"

func WatchlistRoutes(r *gin.Engine, d Deps) {
	watchlist := r.Group("/watchlist", d.requireAuth())
	{
		watchlist.POST("", d.Controller.ToggleWatchlist)
		watchlist.GET("", d.Controller.ListWatchlist)
		watchlist.GET("/isSaved/:propertyId", d.Controller.IsSaved)
	}
}
