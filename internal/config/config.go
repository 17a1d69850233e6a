package config

import "time"

// Config holds runtime configuration for a tournament run.
type Config struct {
	BracketFile string
	OutputFile  string
	ResultsJSON string
	Decider     string
	Parallel    bool
	Retry       RetryConfig
	Anthropic   AnthropicConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// RetryConfig controls how live decider calls are retried and spaced.
type RetryConfig struct {
	Attempts    int
	Backoff     time.Duration
	MinInterval time.Duration
}

// LogConfig is passed through to logging.NewLogger.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		BracketFile: envOrDefault(envBracketFile, defaultBracketFile),
		OutputFile:  envOrDefault(envOutputFile, defaultOutputFile),
		ResultsJSON: envOrDefault(envResultsJSON, ""),
		Decider:     envOrDefault(envDecider, defaultDecider),
		Parallel:    boolEnvOrDefault(envParallel, false),
		Retry: RetryConfig{
			Attempts:    intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			Backoff:     durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
			MinInterval: durationEnvOrDefault(envMinInterval, defaultMinInterval),
		},
		Anthropic: loadAnthropic(),
		Metrics:   loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
