package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/summarize-anything/summarize-api/api/health"
	jobsAPI "github.com/summarize-anything/summarize-api/api/jobs"
	"github.com/summarize-anything/summarize-api/api/summarize"
	"github.com/summarize-anything/summarize-api/api/translate"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/api/version"
	_ "github.com/summarize-anything/summarize-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Submission and result routes. Submissions kick off downloads and model
	// calls, so they get a tighter limit than polling.
	submitGroup := v1.Group("")
	submitGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	summarize.RegisterRoutes(submitGroup, deps)

	// Standalone translation (2 req/s, burst of 4)
	translateGroup := v1.Group("/translate")
	translateGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 4))
	translate.RegisterRoutes(translateGroup, deps)

	// Job listing (10 req/s, burst of 20)
	jobsGroup := v1.Group("/jobs")
	jobsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	jobsAPI.RegisterRoutes(jobsGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
