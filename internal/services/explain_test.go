package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainService_Explain(t *testing.T) {
	generator := &fakeGenerator{text: "Because 2+2 equals 4."}

	svc := NewExplainService(generator, logrus.New())

	explanation, err := svc.Explain(context.Background(), "2+2?", "4")
	require.NoError(t, err)

	// Generator invoked exactly once, output returned verbatim
	require.Len(t, generator.calls, 1)
	assert.Contains(t, generator.calls[0], "2+2?")
	assert.Contains(t, generator.calls[0], "4")
	assert.Equal(t, "Because 2+2 equals 4.", explanation)
}

func TestExplainService_GeneratorFailureIsUpstream(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("deadline exceeded")}

	svc := NewExplainService(generator, logrus.New())

	_, err := svc.Explain(context.Background(), "2+2?", "4")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "gemini", upstream.Provider)

	// No retry
	assert.Len(t, generator.calls, 1)
}
