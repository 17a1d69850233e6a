package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
	defer shutdown(context.Background())

	rec.RecordDeciderAttempt("anthropic", time.Millisecond, nil)
	rec.RecordDeciderAttempt("anthropic", time.Millisecond, errors.New("boom"))
	rec.RecordRateLimit("anthropic", time.Second)
	rec.RecordGame("Round of 64")
	rec.RecordRun(time.Second, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	body := rr.Body.String()
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", rr.Code)
	}
	if !strings.Contains(body, "decider_attempts_total") || !strings.Contains(body, "games_played_total") {
		t.Fatalf("expected decider and game counters in exposition, got %s", body)
	}
	if rec.DeciderCalls("anthropic") != 2 {
		t.Fatalf("expected in-memory stats alongside otel")
	}
}

func TestSetupPropagatesFactoryErrors(t *testing.T) {
	origProm := promReaderFactory
	origInst := instrumentFactory
	t.Cleanup(func() {
		promReaderFactory = origProm
		instrumentFactory = origInst
	})

	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("prom down")
	}
	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatal("expected prometheus factory error")
	}

	promReaderFactory = origProm
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("no instruments")
	}
	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatal("expected instrument factory error")
	}
}

func TestSetupUsesOTLPReaderWhenConfigured(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })

	called := false
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		called = true
		if endpoint != "collector:4318" || !insecure {
			t.Fatalf("unexpected otlp args %s %v", endpoint, insecure)
		}
		return sdkmetric.NewManualReader(), nil
	}

	_, _, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318", OtlpInsecure: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer shutdown(context.Background())
	if !called {
		t.Fatal("expected otlp reader factory to be used")
	}
}
