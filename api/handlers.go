package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gcbaptista/pdf-phrase-search/services"
)

// LivenessMessage is returned by the root route.
const LivenessMessage = "Phrase search API running"

// API holds dependencies for API handlers, primarily the searcher.
type API struct {
	searcher services.Searcher
}

// NewAPI creates a new API handler structure.
func NewAPI(searcher services.Searcher) *API {
	return &API{searcher: searcher}
}

// Options configures the middleware chain built by NewRouter.
type Options struct {
	AllowOrigins string  // Access-Control-Allow-Origin value; "*" when empty
	RateLimit    float64 // Requests per second per client IP; 0 disables limiting
	RateBurst    int
	Metrics      bool // Expose /metrics
}

// NewRouter builds a gin engine with the full middleware chain and all routes.
func NewRouter(searcher services.Searcher, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(CORSMiddleware(opts.AllowOrigins))
	if opts.RateLimit > 0 {
		router.Use(NewRateLimiter(opts.RateLimit, opts.RateBurst).Middleware())
	}

	SetupRoutes(router, searcher)

	if opts.Metrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	return router
}

// SetupRoutes defines all the API routes for the phrase search service.
func SetupRoutes(router *gin.Engine, searcher services.Searcher) {
	apiHandler := NewAPI(searcher)

	// Liveness routes
	router.GET("/", apiHandler.HomeHandler)
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Phrase search
	router.GET("/search", apiHandler.SearchHandler)
}

// HomeHandler returns a static liveness string.
func (api *API) HomeHandler(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}

// HealthCheckHandler reports service health.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
