package service

import (
	"context"
	"fmt"
	"strings"

	"soothe/internal/config"
	"soothe/internal/model"
	"soothe/internal/prompt"
)

// GenerateRequest is one request for coping suggestions. History, when
// present, biases the model away from repeating earlier suggestions; it is
// the only cross-call state and the caller supplies it.
type GenerateRequest struct {
	Topic       string
	Context     string
	History     []model.PriorSuggestion
	Personality model.Personality
}

// GenerateResult is the normalized outcome of one generation call
type GenerateResult struct {
	Suggestions []model.GeneratedSuggestion `json:"suggestions"`
	Usage       model.TokenUsage            `json:"usage"`
	Personality model.Personality           `json:"personality"`
}

// HealthStatus reports upstream reachability and authentication only; it says
// nothing about response-shape correctness.
type HealthStatus struct {
	Healthy bool   `json:"healthy"`
	Model   string `json:"model,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GeneratorService orchestrates suggestion generation against the OpenAI
// chat-completions API: template selection, prompt composition, one upstream
// call, response normalization. Stateless per call and safe for concurrent use.
type GeneratorService struct {
	config *config.AIConfig
	client *openAIClient
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(cfg *config.AIConfig) *GeneratorService {
	return &GeneratorService{
		config: cfg,
		client: newOpenAIClient(cfg),
	}
}

// GenerateSuggestions issues exactly one upstream call and returns the
// normalized suggestion list. No internal retries: every failure surfaces as
// one of the sentinel error kinds for the caller to map or retry.
func (s *GeneratorService) GenerateSuggestions(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("topic is required")
	}

	personality := model.ParsePersonality(string(req.Personality))

	completion, err := s.client.complete(ctx, completionRequest{
		Model: s.config.Models.Suggest,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.Template(personality)},
			{Role: "user", Content: buildUserPrompt(req)},
		},
		Temperature:    s.config.SuggestTemperature,
		MaxTokens:      s.config.MaxSuggestTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	suggestions, err := normalizeSuggestions([]byte(completion.Choices[0].Message.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	return &GenerateResult{
		Suggestions: suggestions,
		Usage: model.TokenUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
		Personality: personality,
	}, nil
}

// CheckHealth probes the upstream endpoint with a minimal fixed request.
// Liveness only: it validates reachability and authentication, not prompt or
// response-shape correctness.
func (s *GeneratorService) CheckHealth(ctx context.Context) *HealthStatus {
	completion, err := s.client.complete(ctx, completionRequest{
		Model:     s.config.Models.Suggest,
		Messages:  []chatMessage{{Role: "user", Content: "Hello"}},
		MaxTokens: 5,
	})
	if err != nil {
		return &HealthStatus{Healthy: false, Error: err.Error()}
	}

	modelName := completion.Model
	if modelName == "" {
		modelName = s.config.Models.Suggest
	}
	return &HealthStatus{Healthy: true, Model: modelName}
}

// buildUserPrompt composes the user-facing prompt. Plain concatenation: the
// model treats the whole thing as an opaque instruction, so no escaping is
// needed; topic and context length limits are enforced by request validation.
func buildUserPrompt(req *GenerateRequest) string {
	var b strings.Builder
	b.WriteString("I feel anxious about the following task or situation: ")
	b.WriteString(req.Topic)

	if c := strings.TrimSpace(req.Context); c != "" {
		b.WriteString("\n\nAdditional context: ")
		b.WriteString(c)
	}

	if len(req.History) > 0 {
		b.WriteString("\n\nYou already suggested the following:\n")
		for i, h := range req.History {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, h.Text, h.Type)
		}
		b.WriteString("\nGive me suggestions that are materially different from the ones listed above.")
	}

	return b.String()
}
