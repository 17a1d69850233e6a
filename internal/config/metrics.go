package config

import "strconv"

// MetricsConfig controls telemetry export. With Enabled set, the Prometheus
// endpoint is served on Port for the duration of a run.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// Addr is the listen address for the /metrics server.
func (c MetricsConfig) Addr() string {
	return ":" + c.Port
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         portEnvOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

func portEnvOrDefault(key, defaultValue string) string {
	raw := envOrDefault(key, defaultValue)
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 || port > 65535 {
		return defaultValue
	}
	return raw
}
