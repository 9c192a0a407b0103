package summarize

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/internal/services/jobs"
)

// Status handles job status polling
// @Summary      Get job status
// @Description  Returns the current status and progress of a processing job
// @Tags         summarize
// @Produce      json
// @Param        job_id path string true "Job ID"
// @Success      200 {object} types.StatusResponse "Job status"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/status/{job_id} [get]
func Status(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID := c.Param("job_id")

		job, err := deps.JobStore.Get(c.Request.Context(), jobID)
		if err != nil {
			if errors.Is(err, jobs.ErrJobNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Job not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to load job",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.StatusResponse{
			JobID:     job.ID,
			Status:    string(job.Status),
			Progress:  job.Progress,
			Error:     job.Error,
			CreatedAt: job.CreatedAt,
			UpdatedAt: job.UpdatedAt,
		})
	}
}
