package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envAnthropicKey, "")
	t.Setenv(envDecider, "")

	cfg := Load()

	if cfg.BracketFile != defaultBracketFile {
		t.Fatalf("expected default bracket file %s, got %s", defaultBracketFile, cfg.BracketFile)
	}
	if cfg.OutputFile != defaultOutputFile {
		t.Fatalf("expected default output file %s, got %s", defaultOutputFile, cfg.OutputFile)
	}
	if cfg.ResultsJSON != "" {
		t.Fatalf("expected results json disabled by default, got %s", cfg.ResultsJSON)
	}
	if cfg.Decider != defaultDecider {
		t.Fatalf("expected auto decider by default, got %q", cfg.Decider)
	}
	if cfg.Parallel {
		t.Fatal("expected sequential divisions by default")
	}
	if cfg.Retry.Attempts != defaultRetryAttempts || cfg.Retry.Backoff != defaultRetryBackoff || cfg.Retry.MinInterval != defaultMinInterval {
		t.Fatalf("unexpected retry defaults %+v", cfg.Retry)
	}
	if cfg.Anthropic.BaseURL != defaultAnthropicURL || cfg.Anthropic.Model != defaultAnthropicModel {
		t.Fatalf("unexpected anthropic defaults %+v", cfg.Anthropic)
	}
	if cfg.Anthropic.MaxTokens != defaultAnthropicTokens || cfg.Anthropic.Timeout != defaultAnthropicTime {
		t.Fatalf("unexpected anthropic limits %+v", cfg.Anthropic)
	}
	if cfg.Anthropic.Enabled() {
		t.Fatal("expected anthropic disabled without api key")
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envBracketFile, "brackets/2025.yaml")
	t.Setenv(envOutputFile, "out/results.txt")
	t.Setenv(envResultsJSON, "out/results.json")
	t.Setenv(envDecider, "anthropic")
	t.Setenv(envParallel, "true")
	t.Setenv(envRetryAttempts, "5")
	t.Setenv(envRetryBackoff, "2s")
	t.Setenv(envMinInterval, "1s")
	t.Setenv(envAnthropicKey, "secret-key")
	t.Setenv(envAnthropicURL, "http://example.com/v1")
	t.Setenv(envAnthropicModel, "some-model")
	t.Setenv(envAnthropicTokens, "800")
	t.Setenv(envAnthropicTime, "90s")
	t.Setenv(envMetricsOn, "yes")
	t.Setenv(envMetricsPort, "9191")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.BracketFile != "brackets/2025.yaml" || cfg.OutputFile != "out/results.txt" || cfg.ResultsJSON != "out/results.json" {
		t.Fatalf("expected path overrides, got %+v", cfg)
	}
	if cfg.Decider != "anthropic" || !cfg.Parallel {
		t.Fatalf("expected decider/parallel overrides, got %q %v", cfg.Decider, cfg.Parallel)
	}
	if cfg.Retry.Attempts != 5 || cfg.Retry.Backoff != 2*time.Second || cfg.Retry.MinInterval != time.Second {
		t.Fatalf("expected retry overrides, got %+v", cfg.Retry)
	}
	if !cfg.Anthropic.Enabled() || cfg.Anthropic.APIKey != "secret-key" {
		t.Fatalf("expected anthropic api key override, got %+v", cfg.Anthropic)
	}
	if cfg.Anthropic.BaseURL != "http://example.com/v1" || cfg.Anthropic.Model != "some-model" {
		t.Fatalf("expected anthropic endpoint overrides, got %+v", cfg.Anthropic)
	}
	if cfg.Anthropic.MaxTokens != 800 || cfg.Anthropic.Timeout != 90*time.Second {
		t.Fatalf("expected anthropic limit overrides, got %+v", cfg.Anthropic)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9191" {
		t.Fatalf("expected metrics overrides, got %+v", cfg.Metrics)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envRetryBackoff, "not-a-duration")

	cfg := Load()

	if cfg.Retry.Backoff != defaultRetryBackoff {
		t.Fatalf("expected default backoff on invalid value, got %s", cfg.Retry.Backoff)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envAnthropicTime, "0s")
	t.Setenv(envRetryAttempts, "-2")

	cfg := Load()

	if cfg.Anthropic.Timeout != defaultAnthropicTime {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.Anthropic.Timeout)
	}
	if cfg.Retry.Attempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts on non-positive value, got %d", cfg.Retry.Attempts)
	}
}

func TestMetricsPortValidation(t *testing.T) {
	for raw, want := range map[string]string{"9191": "9191", "http": defaultMetricsPort, "70000": defaultMetricsPort, "0": defaultMetricsPort} {
		t.Setenv(envMetricsPort, raw)
		cfg := Load()
		if cfg.Metrics.Port != want {
			t.Fatalf("%q: expected port %q, got %q", raw, want, cfg.Metrics.Port)
		}
		if cfg.Metrics.Addr() != ":"+want {
			t.Fatalf("%q: unexpected addr %q", raw, cfg.Metrics.Addr())
		}
	}
}
