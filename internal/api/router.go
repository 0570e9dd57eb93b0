// Package api assembles the HTTP surface: triage API, health, metrics, and
// static dashboard serving.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonesrussell/cortexgate/internal/archive"
	"github.com/jonesrussell/cortexgate/internal/config"
	"github.com/jonesrussell/cortexgate/internal/handlers"
	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const corsMaxAgeHours = 12

func NewRouter(
	cfg *config.Config,
	repo *repository.ItemRepository,
	service *archive.Service,
	log logger.Logger,
) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// CORS middleware - must be first so OPTIONS preflights short-circuit.
	// Requests without an Origin header get no CORS headers; browsers only
	// send Origin (and check the headers) on cross-origin requests.
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       corsMaxAgeHours * time.Hour,
	}
	if len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	}
	router.Use(cors.New(corsCfg))

	// Middleware
	router.Use(requestID())
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Triage API
	itemHandler := handlers.NewItemHandler(repo, service, log)
	api := router.Group("/api")
	api.GET("/items", itemHandler.List)
	api.POST("/save/:id", itemHandler.Save)
	api.DELETE("/dismiss/:id", itemHandler.Dismiss)

	// Everything else is the static dashboard
	static := staticHandler(cfg.Static.Dir, log)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}
		static(c)
	})

	return router
}

// requestID attaches a request id to the context and response for log
// correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func ginLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		log.Info("HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status_code", statusCode),
			logger.String("client_ip", c.ClientIP()),
			logger.String("request_id", c.GetString("request_id")),
			logger.Duration("duration", duration),
		)
	}
}
