package handlers

import (
	"net/http"
	"time"

	"mcqs-helper/internal/config"
	"mcqs-helper/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HandleHealth reports liveness and whether each collaborator is configured.
// It makes no outbound calls.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	serviceStatus := func(err error) string {
		if err != nil {
			return "not_configured"
		}
		return "configured"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Service:   "mcqs-helper",
		Timestamp: time.Now().Format(time.RFC3339),
		Services: map[string]string{
			"resend": serviceStatus(h.cfg.ValidateResend()),
			"gemini": serviceStatus(h.cfg.ValidateGemini()),
		},
	})
}
