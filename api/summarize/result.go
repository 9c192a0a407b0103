package summarize

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/jobs"
)

// completedResult loads a job and returns its result only once the job has
// completed. Unknown jobs are a 404; jobs still in flight or failed are a
// 400 naming their current status.
func completedResult(c *gin.Context, deps *types.Dependencies) (*models.Job, bool) {
	jobID := c.Param("job_id")

	job, err := deps.JobStore.Get(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Job not found",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Failed to load job",
			Details: err.Error(),
		})
		return nil, false
	}

	if job.Status == models.JobStatusFailed {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Job failed",
			Details: job.Error,
		})
		return nil, false
	}
	if job.Status != models.JobStatusCompleted || job.Result == nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  types.StatusError,
			Message: fmt.Sprintf("Job is still processing (status: %s)", job.Status),
		})
		return nil, false
	}

	return job, true
}

// Result returns the complete output of a finished job
// @Summary      Get job result
// @Description  Returns the transcript, summaries, chapters, quiz, sentiment and translations of a completed job
// @Tags         summarize
// @Produce      json
// @Param        job_id path string true "Job ID"
// @Success      200 {object} types.ResultResponse "Job result"
// @Failure      400 {object} types.ErrorResponse "Job not completed"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/result/{job_id} [get]
func Result(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := completedResult(c, deps)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, types.ResultResponse{JobID: job.ID, Result: job.Result})
	}
}

// Quiz returns only the quiz portion of a finished job
// @Summary      Get job quiz
// @Tags         summarize
// @Produce      json
// @Param        job_id path string true "Job ID"
// @Success      200 {object} models.QuizResult "Quiz questions"
// @Failure      400 {object} types.ErrorResponse "Job not completed"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/result/{job_id}/quiz [get]
func Quiz(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := completedResult(c, deps)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, job.Result.Quiz)
	}
}

// Sentiment returns only the sentiment portion of a finished job
// @Summary      Get job sentiment
// @Tags         summarize
// @Produce      json
// @Param        job_id path string true "Job ID"
// @Success      200 {object} models.SentimentResult "Sentiment analysis"
// @Failure      400 {object} types.ErrorResponse "Job not completed"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/result/{job_id}/sentiment [get]
func Sentiment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := completedResult(c, deps)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, job.Result.Sentiment)
	}
}

// Chapters returns only the chapter list of a finished job
// @Summary      Get job chapters
// @Tags         summarize
// @Produce      json
// @Param        job_id path string true "Job ID"
// @Success      200 {array} models.Chapter "Chapters"
// @Failure      400 {object} types.ErrorResponse "Job not completed"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/result/{job_id}/chapters [get]
func Chapters(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := completedResult(c, deps)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, job.Result.Chapters)
	}
}

// Report renders a finished job as a downloadable DOCX document
// @Summary      Download job report
// @Tags         summarize
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        job_id path string true "Job ID"
// @Success      200 {file} file "DOCX report"
// @Failure      400 {object} types.ErrorResponse "Job not completed"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/result/{job_id}/report [get]
func Report(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := completedResult(c, deps)
		if !ok {
			return
		}

		path, err := deps.ReportBuilder.Build(job.ID, job.Result)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to build report",
				Details: err.Error(),
			})
			return
		}

		c.FileAttachment(path, fmt.Sprintf("report_%s.docx", job.ID))
	}
}
