package services

import (
	"context"
	"fmt"

	"mcqs-helper/internal/gemini"
	"mcqs-helper/internal/models"
	"mcqs-helper/internal/resend"

	"github.com/sirupsen/logrus"
)

// EmailSender is the outbound email capability. *resend.Client satisfies it;
// tests substitute their own.
type EmailSender interface {
	SendEmail(ctx context.Context, req resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// TextGenerator is the outbound text-generation capability. *gemini.Client
// satisfies it.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, genConfig *gemini.GenerationConfig) (string, error)
}

type FeedbackService struct {
	sender         EmailSender
	generator      TextGenerator
	fromAddress    string
	defaultSubject string
	logger         *logrus.Logger
}

func NewFeedbackService(
	sender EmailSender,
	generator TextGenerator,
	fromAddress string,
	defaultSubject string,
	logger *logrus.Logger,
) *FeedbackService {
	return &FeedbackService{
		sender:         sender,
		generator:      generator,
		fromAddress:    fromAddress,
		defaultSubject: defaultSubject,
		logger:         logger,
	}
}

// SendFeedback relays the feedback email through Resend. The subject line is
// generated from the feedback body; generation failures fall back to the
// default subject and never fail the send.
func (s *FeedbackService) SendFeedback(ctx context.Context, to []string, htmlBody string) (*models.FeedbackResponse, error) {
	subject := s.generateSubject(ctx, htmlBody)

	s.logger.WithFields(logrus.Fields{
		"recipients": len(to),
		"subject":    subject,
	}).Info("Sending feedback email")

	resp, err := s.sender.SendEmail(ctx, resend.SendEmailRequest{
		From:    s.fromAddress,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		s.logger.WithError(err).Error("Resend send failed")
		return nil, &UpstreamError{Provider: "resend", Err: err}
	}

	return &models.FeedbackResponse{
		EmailID: resp.ID,
		Subject: subject,
	}, nil
}

// generateSubject asks Gemini for a short subject line summarizing the
// feedback. Any failure falls back to the configured default.
func (s *FeedbackService) generateSubject(ctx context.Context, htmlBody string) string {
	if s.generator == nil {
		s.logger.Warn("Subject generator not configured - using default subject line")
		return s.defaultSubject
	}

	prompt := fmt.Sprintf(
		"Please create a very short and concise email subject line "+
			"(max 5-7 words) summarizing the following user feedback. "+
			"Only return the subject line text itself, without any prefixes like "+
			"'Subject:' or quotation marks.\n\nFeedback:\n%s", htmlBody)

	subject, err := s.generator.GenerateContent(ctx, prompt, &gemini.GenerationConfig{
		MaxOutputTokens: 20,
		Temperature:     0.7,
	})
	if err != nil {
		s.logger.WithError(err).Warn("Subject generation failed - using default subject line")
		return s.defaultSubject
	}

	return subject
}
