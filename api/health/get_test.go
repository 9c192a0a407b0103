package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/internal/database"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		setupDeps  func() *types.Dependencies
		wantDBStat string
	}{
		{
			name: "with database",
			setupDeps: func() *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				return &types.Dependencies{DB: db}
			},
			wantDBStat: "healthy",
		},
		{
			name:       "without database",
			setupDeps:  func() *types.Dependencies { return &types.Dependencies{} },
			wantDBStat: "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			RegisterRoutes(engine, tt.setupDeps())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			engine.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])
			dbStatus := body["database"].(map[string]interface{})
			assert.Equal(t, tt.wantDBStat, dbStatus["status"])
		})
	}
}
