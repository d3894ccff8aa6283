package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GenerateContent sends a single-turn prompt and returns the first non-empty
// text chunk from the model's answer.
func (c *Client) GenerateContent(ctx context.Context, prompt string, genConfig *GenerationConfig) (string, error) {
	req := GenerateContentRequest{
		Contents:         []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: genConfig,
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "mcqs-helper/1.0 (Gemini Request)")

	c.logger.WithFields(logrus.Fields{
		"model":       c.model,
		"prompt_size": len(prompt),
	}).Debug("Making Gemini API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"model":         c.model,
		"response_size": len(responseBody),
	}).Debug("Gemini API response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	var response GenerateContentResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	text := extractFirstText(&response)
	if text == "" {
		return "", fmt.Errorf("no extractable text in Gemini response")
	}

	return text, nil
}

// extractFirstText returns the first non-empty text chunk from a Gemini
// response, or "". Candidates normally carry content, but some experimental
// endpoints use message or put text at the top level.
func extractFirstText(resp *GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		content := cand.Content
		if content == nil {
			content = cand.Message
		}
		if content == nil {
			continue
		}
		for _, part := range content.Parts {
			if txt := strings.TrimSpace(part.Text); txt != "" {
				return txt
			}
		}
	}

	return strings.TrimSpace(resp.Text)
}
