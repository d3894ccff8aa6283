// internal/api/handlers/explain.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"mcqs-helper/internal/models"
	"mcqs-helper/internal/services"
	"mcqs-helper/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ExplainHandler struct {
	explainService *services.ExplainService
	logger         *logrus.Logger
}

func NewExplainHandler(explainService *services.ExplainService, logger *logrus.Logger) *ExplainHandler {
	return &ExplainHandler{
		explainService: explainService,
		logger:         logger,
	}
}

// HandleExplain validates an explain request and returns the generated
// explanation for the question's correct answer.
func (h *ExplainHandler) HandleExplain(c *gin.Context) {
	var req models.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid explain request")
		utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "Invalid request format", err)
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "'question' cannot be empty", nil)
		return
	}

	if strings.TrimSpace(req.CorrectAnswer) == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "'correct_answer' cannot be empty", nil)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"question_length": len(req.Question),
		"ip_address":      c.ClientIP(),
	}).Info("Processing explain request")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	explanation, err := h.explainService.Explain(ctx, req.Question, req.CorrectAnswer)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			utils.ErrorResponse(c, http.StatusBadGateway, utils.KindUpstreamError, "Failed to generate explanation", err)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, utils.KindUpstreamError, "Failed to generate explanation", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Explanation generated", models.ExplainResponse{
		Explanation: explanation,
	})
}
