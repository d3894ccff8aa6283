package services

import (
	"context"
	"errors"
	"testing"

	"mcqs-helper/internal/gemini"
	"mcqs-helper/internal/resend"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls []resend.SendEmailRequest
	resp  *resend.SendEmailResponse
	err   error
}

func (f *fakeSender) SendEmail(ctx context.Context, req resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeGenerator struct {
	calls []string
	text  string
	err   error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string, genConfig *gemini.GenerationConfig) (string, error) {
	f.calls = append(f.calls, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestFeedbackService_SendFeedback(t *testing.T) {
	sender := &fakeSender{resp: &resend.SendEmailResponse{ID: "email-123"}}
	generator := &fakeGenerator{text: "Great UI feedback"}

	svc := NewFeedbackService(sender, generator, "from@example.com", "MCQS Feedback", logrus.New())

	resp, err := svc.SendFeedback(context.Background(), []string{"a@example.com", "b@example.com"}, "<p>hi</p>")
	require.NoError(t, err)

	// Sender invoked exactly once with the exact recipient list and body
	require.Len(t, sender.calls, 1)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sender.calls[0].To)
	assert.Equal(t, "<p>hi</p>", sender.calls[0].HTML)
	assert.Equal(t, "from@example.com", sender.calls[0].From)
	assert.Equal(t, "Great UI feedback", sender.calls[0].Subject)

	assert.Equal(t, "email-123", resp.EmailID)
	assert.Equal(t, "Great UI feedback", resp.Subject)
}

func TestFeedbackService_SubjectGenerationFailureFallsBack(t *testing.T) {
	sender := &fakeSender{resp: &resend.SendEmailResponse{ID: "email-456"}}
	generator := &fakeGenerator{err: errors.New("gemini unavailable")}

	svc := NewFeedbackService(sender, generator, "from@example.com", "MCQS Feedback", logrus.New())

	resp, err := svc.SendFeedback(context.Background(), []string{"a@example.com"}, "<p>hi</p>")
	require.NoError(t, err)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "MCQS Feedback", sender.calls[0].Subject)
	assert.Equal(t, "MCQS Feedback", resp.Subject)
}

func TestFeedbackService_NilGeneratorUsesDefaultSubject(t *testing.T) {
	sender := &fakeSender{resp: &resend.SendEmailResponse{}}

	svc := NewFeedbackService(sender, nil, "from@example.com", "MCQS Feedback", logrus.New())

	_, err := svc.SendFeedback(context.Background(), []string{"a@example.com"}, "<p>hi</p>")
	require.NoError(t, err)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "MCQS Feedback", sender.calls[0].Subject)
}

func TestFeedbackService_SenderFailureIsUpstream(t *testing.T) {
	sender := &fakeSender{err: errors.New("503 service unavailable")}
	generator := &fakeGenerator{text: "Subject"}

	svc := NewFeedbackService(sender, generator, "from@example.com", "MCQS Feedback", logrus.New())

	_, err := svc.SendFeedback(context.Background(), []string{"a@example.com"}, "<p>hi</p>")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "resend", upstream.Provider)
	assert.Contains(t, err.Error(), "503")

	// No retry
	assert.Len(t, sender.calls, 1)
}
