package jobs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/summarize-anything/summarize-api/api/types"
)

// List returns recent jobs
// @Summary      List jobs
// @Description  Returns recent jobs ordered newest first
// @Tags         jobs
// @Produce      json
// @Param        limit query int false "Maximum number of jobs to return" default(20)
// @Param        offset query int false "Number of jobs to skip" default(0)
// @Success      200 {object} types.JobListResponse "Job list"
// @Failure      400 {object} types.ErrorResponse "Bad request"
// @Router       /api/v1/jobs [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit < 1 || limit > 100 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Limit must be between 1 and 100",
			})
			return
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Offset must be zero or greater",
			})
			return
		}

		jobList, err := deps.JobStore.List(c.Request.Context(), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list jobs",
				Details: err.Error(),
			})
			return
		}

		summaries := make([]types.JobSummary, len(jobList))
		for i, job := range jobList {
			summaries[i] = types.JobSummary{
				JobID:     job.ID,
				Status:    string(job.Status),
				Progress:  job.Progress,
				CreatedAt: job.CreatedAt,
			}
		}

		c.JSON(http.StatusOK, types.JobListResponse{
			Status: types.StatusOK,
			Count:  len(summaries),
			Jobs:   summaries,
		})
	}
}
