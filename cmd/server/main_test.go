package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter()

	tests := []struct {
		method   string
		path     string
		wantType string
	}{
		{http.MethodGet, "/spec", "SPEC"},
		{http.MethodGet, "/discover", "CATALOG"},
		{http.MethodPost, "/check", "CONNECTION_STATUS"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var msg map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
			assert.Equal(t, tt.wantType, msg["type"])
		})
	}
}

func TestReadRejectsInvalidConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("OPENAI_API_KEY", "")
	testChdir(t, t.TempDir())
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/read", strings.NewReader(`{"job_role": "QA", "open_ai_api_key": "k", "past_time": "decade"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "decade")
}
