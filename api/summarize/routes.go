package summarize

import (
	"github.com/gin-gonic/gin"
	"github.com/summarize-anything/summarize-api/api/types"
)

// RegisterRoutes registers the submission and result routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/submit", Submit(deps))
	router.GET("/status/:job_id", Status(deps))
	router.GET("/result/:job_id", Result(deps))
	router.GET("/result/:job_id/quiz", Quiz(deps))
	router.GET("/result/:job_id/sentiment", Sentiment(deps))
	router.GET("/result/:job_id/chapters", Chapters(deps))
	router.GET("/result/:job_id/report", Report(deps))
}
