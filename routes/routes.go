package routes

import (
	"strings"
	"time"

	"carwash/handlers"
	"carwash/middleware"
	"carwash/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options carries the route-level settings read from configuration.
type Options struct {
	// AllowedOrigin is the single browser origin allowed to call the API.
	// Empty or "*" allows any origin without credentials.
	AllowedOrigin string
	// MaxRequestsPerMin is the per-IP rate limit; zero disables it.
	MaxRequestsPerMin int
}

// RegisterBookingRoutes registers the booking CRUD endpoints. Static segments
// (pending, search) take precedence over :id.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.CreateBookingHandler)
		bookings.GET("", hb.ListBookingsHandler)
		bookings.GET("/pending", hb.ListPendingBookingsHandler)
		bookings.GET("/search", hb.SearchBookingsHandler)
		bookings.GET("/:id", hb.GetBookingHandler)
		bookings.PUT("/:id", hb.UpdateBookingHandler)
		bookings.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthCheckHandler != nil {
		r.GET("/health", hb.HealthCheckHandler)
	}
}

// RegisterMetricsRoute exposes prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.MetricsHandler != nil {
		r.GET("/metrics", hb.MetricsHandler)
	}
}

// corsConfig allows the configured front-end origin with credentials, or any
// origin without them.
func corsConfig(opts Options) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origin := strings.TrimSpace(opts.AllowedOrigin)
	if origin == "" || origin == "*" {
		// Browsers reject credentials alongside a wildcard origin.
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		if !strings.Contains(origin, "://") {
			origin = "http://" + origin
		}
		cfg.AllowOrigins = []string{strings.TrimSuffix(origin, "/")}
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(corsConfig(opts)))

	RegisterHealthRoute(r, hb)
	RegisterMetricsRoute(r, hb)
	RegisterBookingRoutes(r, hb)
}

// NewRouter builds the gin engine with the global middleware chain and every route.
func NewRouter(hb *handlers.HandlerBundle, opts Options, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(utils.ErrorHandler(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimitMiddleware(opts.MaxRequestsPerMin, logger))

	RegisterRoutes(r, hb, opts)
	return r
}
