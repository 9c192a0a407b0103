package jobs

import (
	"github.com/gin-gonic/gin"
	"github.com/summarize-anything/summarize-api/api/types"
)

// RegisterRoutes registers job listing routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/jobs (router already includes /jobs prefix)
	router.GET("", List(deps))
}
