package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "mascot-madness"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	deciderAttempts  metric.Int64Counter
	deciderErrors    metric.Int64Counter
	deciderLatencyMs metric.Float64Histogram
	rateLimitHits    metric.Int64Counter
	retryAfterMs     metric.Float64Histogram
	gamesPlayed      metric.Int64Counter
	runs             metric.Int64Counter
	runDurationMs    metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	ctx := context.Background()

	deciderAttempts, err := meter.Int64Counter("decider_attempts_total", metric.WithDescription("Decide calls made, including retries."))
	if err != nil {
		return nil, err
	}
	deciderErrors, err := meter.Int64Counter("decider_errors_total", metric.WithDescription("Decide calls that returned an error."))
	if err != nil {
		return nil, err
	}
	deciderLatency, err := meter.Float64Histogram("decider_duration_ms", metric.WithDescription("Latency of a single decide call."), metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("decider_rate_limit_hits_total", metric.WithDescription("Rate limit responses from the decider."))
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("decider_retry_after_ms", metric.WithDescription("Retry-After hints sent with rate limit responses."), metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	gamesPlayed, err := meter.Int64Counter("games_played_total", metric.WithDescription("Games settled, by phase."))
	if err != nil {
		return nil, err
	}
	runs, err := meter.Int64Counter("tournament_runs_total", metric.WithDescription("Tournament runs, by outcome."))
	if err != nil {
		return nil, err
	}
	runDuration, err := meter.Float64Histogram("tournament_run_duration_ms", metric.WithDescription("Wall time of a tournament run."), metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		deciderAttempts:  deciderAttempts,
		deciderErrors:    deciderErrors,
		deciderLatencyMs: deciderLatency,
		rateLimitHits:    rateLimitHits,
		retryAfterMs:     retryAfter,
		gamesPlayed:      gamesPlayed,
		runs:             runs,
		runDurationMs:    runDuration,
	}, nil
}

func (o *otelInstruments) recordDeciderAttempt(decider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrDecider, decider)}
	o.recordCounter(o.deciderAttempts, 1, attrs...)
	o.recordHistogram(o.deciderLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.deciderErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(decider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrDecider, decider)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordGame(phase string) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesPlayed, 1, attribute.String(AttrPhase, phase))
}

func (o *otelInstruments) recordRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := runOutcome(err)
	attrs := []attribute.KeyValue{attribute.String(AttrOutcome, outcome)}
	o.recordCounter(o.runs, 1, attrs...)
	o.recordHistogram(o.runDurationMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
