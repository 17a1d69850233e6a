package anthropic

import "time"

const (
	deciderName        = "anthropic"
	defaultBaseURL     = "https://api.anthropic.com/v1"
	defaultModel       = "claude-haiku-4-5-20251001"
	defaultMaxTokens   = 500
	defaultHTTPTimeout = 60 * time.Second
	apiVersion         = "2023-06-01"
	maxErrorBody       = 512
)
