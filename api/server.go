package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries the serving-layer knobs the controllers do not own.
type RouterConfig struct {
	TemplatesGlob string
	StaticDir     string
	AudioDir      string
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(cfg RouterConfig, summaries *SummaryController, headlines *NewsController) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	if cfg.TemplatesGlob != "" {
		r.LoadHTMLGlob(cfg.TemplatesGlob)
	}
	if cfg.StaticDir != "" {
		r.Static("/static/img", cfg.StaticDir)
	}
	r.Static("/static/audio", cfg.AudioDir)

	// Register resource routers
	RegisterSummaryRoutes(r, summaries)
	RegisterNewsRoutes(r, headlines)
	RegisterHealthRoutes(r)
	return r
}

// RegisterHealthRoutes registers the liveness endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
