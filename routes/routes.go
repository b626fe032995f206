// Package routes assembles the gin engine: global middlewares, then one
// registration function per resource.
package routes

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tenantguard-be/controllers"
	"tenantguard-be/middlewares"
)

// Deps is everything the router needs.
type Deps struct {
	Controller *controllers.Controller
	Tokens     middlewares.TokenParser
	Limiter    middlewares.Limiter
	Metrics    *middlewares.Metrics
	Logger     *slog.Logger

	ReportDailyLimit  int
	InquiryDailyLimit int
	AllowedOrigins    []string
	BodyLimitBytes    int64

	// TrustedProxies may set X-Forwarded-For. Empty trusts no proxy, so the
	// client IP is always the remote address.
	TrustedProxies []string
}

func (d Deps) requireAuth() gin.HandlerFunc {
	return middlewares.RequireAuth(d.Tokens, d.Logger)
}

func (d Deps) optionalAuth() gin.HandlerFunc {
	return middlewares.OptionalAuth(d.Tokens)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// NewRouter builds the engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		d.Logger.Error("invalid trusted proxies, trusting none", "proxies", d.TrustedProxies, "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middlewares.Recovery(d.Logger), middlewares.RequestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(cors.New(corsConfig(d.AllowedOrigins)), middlewares.ErrorHandler(d.Logger))
	if d.BodyLimitBytes > 0 {
		r.Use(middlewares.BodyLimit(d.BodyLimitBytes))
	}
	r.NoRoute(middlewares.NotFound())

	r.GET("/health", d.Controller.Health)
	if d.Metrics != nil {
		r.GET("/metrics", d.Metrics.Handler())
	}

	AuthRoutes(r, d)
	PropertyRoutes(r, d)
	RatingRoutes(r, d)
	ReportRoutes(r, d)
	WatchlistRoutes(r, d)
	ToolRoutes(r, d)
	UserRoutes(r, d)
	return r
}
