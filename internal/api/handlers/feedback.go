// internal/api/handlers/feedback.go
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

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
	logger          *logrus.Logger
}

func NewFeedbackHandler(feedbackService *services.FeedbackService, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// HandleFeedback validates a feedback submission and relays it as an email.
func (h *FeedbackHandler) HandleFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid feedback request")
		utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "Invalid request format", err)
		return
	}

	if len(req.To) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "'to' must contain at least one recipient", nil)
		return
	}

	for _, addr := range req.To {
		if !utils.IsPlausibleEmail(strings.TrimSpace(addr)) {
			utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "'to' must be a list of valid email addresses", nil)
			return
		}
	}

	if strings.TrimSpace(req.HTMLBody) == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.KindValidationError, "'html_body' cannot be empty", nil)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"recipients": len(req.To),
		"body_size":  len(req.HTMLBody),
		"ip_address": c.ClientIP(),
	}).Info("Processing feedback request")

	// Subject generation plus the send itself, each with their own client
	// timeout, fit comfortably inside this bound.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	resp, err := h.feedbackService.SendFeedback(ctx, req.To, req.HTMLBody)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			utils.ErrorResponse(c, http.StatusBadGateway, utils.KindUpstreamError, "Failed to send email via Resend", err)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, utils.KindUpstreamError, "Failed to send email", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback email sent", resp)
}
