package config

import "time"

const (
	envBracketFile     = "BRACKET_FILE"
	envOutputFile      = "OUTPUT_FILE"
	envResultsJSON     = "RESULTS_JSON"
	envDecider         = "DECIDER"
	envParallel        = "PARALLEL_DIVISIONS"
	envRetryAttempts   = "DECIDER_RETRY_ATTEMPTS"
	envRetryBackoff    = "DECIDER_RETRY_BACKOFF"
	envMinInterval     = "DECIDER_MIN_INTERVAL"
	envAnthropicKey    = "ANTHROPIC_API_KEY"
	envAnthropicURL    = "ANTHROPIC_BASE_URL"
	envAnthropicModel  = "ANTHROPIC_MODEL"
	envAnthropicTokens = "ANTHROPIC_MAX_TOKENS"
	envAnthropicTime   = "ANTHROPIC_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultBracketFile = "input/bracket.txt"
	defaultOutputFile  = "output/run1.txt"
	// Empty selects the live decider when an API key is present, mock otherwise.
	defaultDecider       = ""
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 500 * time.Millisecond
	// Spacing between live decider calls; 63 games fit comfortably in standard quotas.
	defaultMinInterval     = 250 * time.Millisecond
	defaultAnthropicURL    = "https://api.anthropic.com/v1"
	defaultAnthropicModel  = "claude-haiku-4-5-20251001"
	defaultAnthropicTokens = 500
	defaultAnthropicTime   = 60 * time.Second
	defaultMetricsPort     = "9090"
	defaultServiceName     = "mascot-madness"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)
