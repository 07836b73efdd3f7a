package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"soothe/internal/config"
)

// Upstream failure kinds. Handlers map these to HTTP statuses with errors.Is;
// none of them are retried inside this package.
var (
	// ErrUpstreamAuth means the API key was rejected or missing. Fatal,
	// operator action required; retrying cannot help.
	ErrUpstreamAuth = errors.New("upstream rejected credentials")

	// ErrRateLimited means the upstream throttled us. Callers may retry
	// with backoff.
	ErrRateLimited = errors.New("upstream rate limited")

	// ErrUpstreamUnavailable covers timeouts, network failures and 5xx
	// responses. Callers may retry.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrBadResponse means the model's completion text was not usable
	// (non-JSON or an empty choice list). With high-temperature sampling a
	// single caller-level retry is reasonable, but cap it.
	ErrBadResponse = errors.New("unusable upstream response")
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// openAIClient is the shared low-level chat-completions client. Safe for
// concurrent use: its fields are read-only after construction.
type openAIClient struct {
	config *config.AIConfig
	client *http.Client
}

func newOpenAIClient(cfg *config.AIConfig) *openAIClient {
	return &openAIClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// complete makes one POST to the chat-completions endpoint and classifies
// failures into the error taxonomy above.
func (c *openAIClient) complete(ctx context.Context, reqBody completionRequest) (*completionResponse, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.CompletionsEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", ErrUpstreamAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w (status %d)", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w (status %d): %s", ErrUpstreamUnavailable, resp.StatusCode, truncate(body, 256))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("%w: decoding envelope: %v", ErrUpstreamUnavailable, err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrBadResponse)
	}

	return &completion, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
