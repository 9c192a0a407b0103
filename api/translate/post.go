package translate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/internal/services/translator"
)

// Post handles standalone translation requests
// @Summary      Translate text
// @Description  Translates text into a supported target language, detecting the source language when it is not given
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        request body types.TranslateRequest true "Translation parameters"
// @Success      200 {object} types.TranslateResponse "Translation"
// @Failure      400 {object} types.ErrorResponse "Bad request"
// @Failure      400 {object} types.ErrorResponse "No translation backend reachable"
// @Router       /api/v1/translate [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		if !translator.SupportedTarget(req.TargetLang) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Unsupported target language",
				Details: req.TargetLang,
			})
			return
		}

		sourceLang := req.SourceLang
		if sourceLang == "" {
			sourceLang = deps.Translator.DetectLanguage(c.Request.Context(), req.Text)
		}

		result, err := deps.Translator.Translate(c.Request.Context(), req.Text, sourceLang, req.TargetLang)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Translation failed",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.TranslateResponse{
			Status:      types.StatusOK,
			Translation: *result,
		})
	}
}
