package config

import "time"

// AnthropicConfig controls how we talk to the Anthropic Messages API.
type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Enabled reports whether a live decider can be built.
func (c AnthropicConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAnthropic() AnthropicConfig {
	return AnthropicConfig{
		APIKey:    envOrDefault(envAnthropicKey, ""),
		BaseURL:   envOrDefault(envAnthropicURL, defaultAnthropicURL),
		Model:     envOrDefault(envAnthropicModel, defaultAnthropicModel),
		MaxTokens: intEnvOrDefault(envAnthropicTokens, defaultAnthropicTokens),
		Timeout:   durationEnvOrDefault(envAnthropicTime, defaultAnthropicTime),
	}
}
