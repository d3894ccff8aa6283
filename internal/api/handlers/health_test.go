package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcqs-helper/internal/config"
	"mcqs-helper/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Resend.APIKey = "key"
	cfg.Resend.BaseURL = "https://api.resend.com"
	cfg.Gemini.APIKey = ""
	cfg.Gemini.Model = "gemini-2.0-flash"

	router := gin.New()
	router.GET("/health", NewHealthHandler(cfg).HandleHealth)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "mcqs-helper", resp.Service)
	assert.Equal(t, "configured", resp.Services["resend"])
	assert.Equal(t, "not_configured", resp.Services["gemini"])
}
