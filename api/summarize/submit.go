package summarize

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/pipeline"
	"github.com/summarize-anything/summarize-api/pkg/download"
)

// Submit handles media submissions
// @Summary      Submit media for processing
// @Description  Accepts a media URL, an uploaded file, or raw text and starts an asynchronous processing job
// @Tags         summarize
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        request body types.SubmitRequest false "URL or text submission"
// @Param        file formData file false "Media file upload"
// @Success      200 {object} types.SubmitResponse "Job accepted"
// @Failure      400 {object} types.ErrorResponse "Bad request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/submit [post]
func Submit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		submission, options, errResp := parseSubmission(c, deps)
		if errResp != nil {
			c.JSON(http.StatusBadRequest, *errResp)
			return
		}

		jobID := uuid.NewString()
		if _, err := deps.JobStore.Create(c.Request.Context(), jobID, options); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to create job",
				Details: err.Error(),
			})
			return
		}

		deps.Runner.Dispatch(jobID, submission)

		c.JSON(http.StatusOK, types.SubmitResponse{
			Status: types.StatusOK,
			JobID:  jobID,
		})
	}
}

func parseSubmission(c *gin.Context, deps *types.Dependencies) (pipeline.Submission, models.JobOptions, *types.ErrorResponse) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, err := c.FormFile("file")
		if err != nil {
			return pipeline.Submission{}, nil, &types.ErrorResponse{
				Status:  types.StatusError,
				Message: "A file upload is required for multipart submissions",
				Details: err.Error(),
			}
		}

		savedPath, err := deps.Downloader.SaveUpload(file)
		if err != nil {
			return pipeline.Submission{}, nil, &types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to save uploaded file",
				Details: err.Error(),
			}
		}

		return pipeline.Submission{Type: "file", FilePath: savedPath},
			models.JobOptions{"type": "file", "filename": file.Filename}, nil
	}

	var req types.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return pipeline.Submission{}, nil, &types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Invalid request format",
			Details: err.Error(),
		}
	}

	switch {
	case req.URL != "":
		if err := download.ValidateURL(req.URL); err != nil {
			return pipeline.Submission{}, nil, &types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid media URL",
				Details: err.Error(),
			}
		}
		return pipeline.Submission{Type: "url", URL: req.URL},
			models.JobOptions{"type": "url", "url": req.URL}, nil
	case strings.TrimSpace(req.Text) != "":
		return pipeline.Submission{Type: "text", Text: req.Text},
			models.JobOptions{"type": "text"}, nil
	default:
		return pipeline.Submission{}, nil, &types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Either url or text must be provided",
		}
	}
}
