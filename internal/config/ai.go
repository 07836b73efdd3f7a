package config

import "os"

// OpenAIModels defines which models to use for different tasks
type OpenAIModels struct {
	// Suggest is for coping-suggestion generation (JSON mode)
	Suggest string `json:"suggest"`

	// Chat is for personality chat replies (plain text)
	Chat string `json:"chat"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    OpenAIModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`

	// Temperature for suggestion generation. Deliberately set near the top
	// of the 0-2 scale: the product wants varied emotional-support phrasing
	// across repeated calls for the same topic, at the cost of the model
	// occasionally returning malformed JSON. Do not lower this to make
	// output deterministic without a product decision.
	SuggestTemperature float64 `json:"suggestTemperature"`

	// Temperature for chat replies (conventional)
	ChatTemperature float64 `json:"chatTemperature"`

	// MaxSuggestTokens is sized to fit ~5 short suggestions
	MaxSuggestTokens int `json:"maxSuggestTokens"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com"),
		Models: OpenAIModels{
			Suggest: getEnvOrDefault("OPENAI_MODEL_SUGGEST", "gpt-4o-mini"),
			Chat:    getEnvOrDefault("OPENAI_MODEL_CHAT", "gpt-4o-mini"),
		},
		TimeoutMS:          30000, // 30 second default timeout
		SuggestTemperature: 2.0,
		ChatTemperature:    0.8,
		MaxSuggestTokens:   600,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// CompletionsEndpoint returns the chat-completions endpoint
func (c *AIConfig) CompletionsEndpoint() string {
	return c.BaseURL + "/v1/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
