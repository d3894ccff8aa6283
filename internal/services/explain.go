package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ExplainService struct {
	generator TextGenerator
	logger    *logrus.Logger
}

func NewExplainService(generator TextGenerator, logger *logrus.Logger) *ExplainService {
	return &ExplainService{
		generator: generator,
		logger:    logger,
	}
}

// Explain asks the text-generation collaborator why the given answer is
// correct and returns its output verbatim.
func (s *ExplainService) Explain(ctx context.Context, question, correctAnswer string) (string, error) {
	prompt := fmt.Sprintf(
		"You are helping a student review multiple-choice questions. "+
			"Explain briefly and clearly why the correct answer is what it is.\n\n"+
			"Question: %s\nCorrect answer: %s", question, correctAnswer)

	s.logger.WithFields(logrus.Fields{
		"question_length": len(question),
	}).Debug("Requesting explanation")

	explanation, err := s.generator.GenerateContent(ctx, prompt, nil)
	if err != nil {
		s.logger.WithError(err).Error("Explanation generation failed")
		return "", &UpstreamError{Provider: "gemini", Err: err}
	}

	return explanation, nil
}
