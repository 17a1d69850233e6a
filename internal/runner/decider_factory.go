package runner

import (
	"errors"
	"log/slog"

	"github.com/preston-bernstein/mascot-madness/internal/config"
	"github.com/preston-bernstein/mascot-madness/internal/decider"
	"github.com/preston-bernstein/mascot-madness/internal/decider/anthropic"
	"github.com/preston-bernstein/mascot-madness/internal/decider/mock"
	"github.com/preston-bernstein/mascot-madness/internal/logging"
	"github.com/preston-bernstein/mascot-madness/internal/metrics"
)

var errMissingAPIKey = errors.New("anthropic decider requested but ANTHROPIC_API_KEY is not set")

// builtDecider is the wrapped decider plus whatever must be released after the run.
type builtDecider struct {
	decider decider.Decider
	name    string
	close   func()
}

// deciderFactory assembles the decider with shared wrappers (rate limit + retry).
type deciderFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newDeciderFactory(logger *slog.Logger, metrics *metrics.Recorder) deciderFactory {
	return deciderFactory{logger: logger, metrics: metrics}
}

func (f deciderFactory) build(cfg config.Config) (builtDecider, error) {
	name, err := f.selectName(cfg)
	if err != nil {
		return builtDecider{}, err
	}

	switch name {
	case deciderAnthropic:
		client := anthropic.NewClient(anthropic.Config{
			BaseURL:   cfg.Anthropic.BaseURL,
			APIKey:    cfg.Anthropic.APIKey,
			Model:     cfg.Anthropic.Model,
			MaxTokens: cfg.Anthropic.MaxTokens,
			Timeout:   cfg.Anthropic.Timeout,
		})
		// Spacing sits inside the retry loop so retries also respect the quota.
		limited := decider.NewRateLimited(client, cfg.Retry.MinInterval, f.logger)
		return builtDecider{
			decider: decider.NewRetrying(limited, f.logger, f.metrics, name, cfg.Retry.Attempts, cfg.Retry.Backoff),
			name:    name,
			close:   limited.Close,
		}, nil
	default:
		return builtDecider{
			decider: decider.NewRetrying(mock.New(), f.logger, f.metrics, name, 1, 0),
			name:    name,
			close:   func() {},
		}, nil
	}
}

// selectName resolves the configured decider. Auto picks the live API when a key
// is present and the mock otherwise; unknown names fall back to auto.
func (f deciderFactory) selectName(cfg config.Config) (string, error) {
	requested := normalizeDeciderName(cfg.Decider)
	switch requested {
	case deciderMock:
		f.logSelected(deciderMock, "configured")
		return deciderMock, nil
	case deciderAnthropic:
		if !cfg.Anthropic.Enabled() {
			return "", errMissingAPIKey
		}
		f.logSelected(deciderAnthropic, "configured")
		return deciderAnthropic, nil
	case deciderAuto:
	default:
		logging.Warn(f.logger, "unknown decider, choosing automatically", slog.String(logging.FieldDecider, cfg.Decider))
	}

	if cfg.Anthropic.Enabled() {
		f.logSelected(deciderAnthropic, "api key detected")
		return deciderAnthropic, nil
	}
	f.logSelected(deciderMock, "no api key, running offline")
	return deciderMock, nil
}

func (f deciderFactory) logSelected(name, reason string) {
	logging.Info(f.logger, "decider selected", slog.String(logging.FieldDecider, name), slog.String("reason", reason))
}
