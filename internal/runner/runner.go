// Package runner wires configuration, decider, driver and reports into one tournament run.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mascot-madness/internal/config"
	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
	"github.com/preston-bernstein/mascot-madness/internal/logging"
	"github.com/preston-bernstein/mascot-madness/internal/metrics"
	"github.com/preston-bernstein/mascot-madness/internal/parser"
	"github.com/preston-bernstein/mascot-madness/internal/report"
	"github.com/preston-bernstein/mascot-madness/internal/tournament"
)

var metricsSetup = metrics.Setup

// Runner owns the collaborators for a single tournament run.
type Runner struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	metricsServer httpServer
	metricsStop   func(context.Context) error
	decider       builtDecider
	writer        *report.Writer
	parse         func(path string) (*bracket.Bracket, error)
}

// New builds a runner from configuration. It fails only when the configured
// decider cannot be constructed.
func New(cfg config.Config, logger *slog.Logger) (*Runner, error) {
	return newRunnerWithMetrics(cfg, logger, nil)
}

func newRunnerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Runner, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	built, err := newDeciderFactory(logger, recorder).build(cfg)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}

	return &Runner{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		decider:       built,
		writer:        report.NewWriter(),
		parse:         parser.Parse,
	}, nil
}

// Metrics exposes the recorder used for the run (useful for tests and summaries).
func (r *Runner) Metrics() *metrics.Recorder {
	return r.metrics
}

// Run parses the bracket, plays the tournament and writes the reports.
// Telemetry and decider resources are released before it returns, so a Runner
// is good for one run.
func (r *Runner) Run(ctx context.Context) (tournament.Result, error) {
	r.startMetrics()
	defer r.shutdown()

	ctx = logging.WithLogger(ctx, r.logger)

	b, err := r.parse(r.cfg.BracketFile)
	if err != nil {
		logging.Error(r.logger, "bracket load failed", err, slog.String(logging.FieldPath, r.cfg.BracketFile))
		return tournament.Result{}, err
	}
	logging.Info(r.logger, "bracket loaded", slog.String(logging.FieldPath, r.cfg.BracketFile))

	driver := tournament.New(r.decider.decider,
		tournament.WithLogger(r.logger),
		tournament.WithMetrics(r.metrics),
		tournament.WithParallelDivisions(r.cfg.Parallel),
	)
	res, err := driver.Run(ctx, b)
	if err != nil {
		return tournament.Result{}, err
	}

	if err := r.writeReports(res); err != nil {
		logging.Error(r.logger, "report write failed", err)
		return tournament.Result{}, err
	}
	return res, nil
}

func (r *Runner) writeReports(res tournament.Result) error {
	if err := r.writer.WriteText(r.cfg.OutputFile, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logging.Info(r.logger, "report written", slog.String(logging.FieldPath, r.cfg.OutputFile))

	if r.cfg.ResultsJSON == "" {
		return nil
	}
	if err := r.writer.WriteJSON(r.cfg.ResultsJSON, res); err != nil {
		return fmt.Errorf("write results json: %w", err)
	}
	logging.Info(r.logger, "results snapshot written", slog.String(logging.FieldPath, r.cfg.ResultsJSON))
	return nil
}

func (r *Runner) startMetrics() {
	if r.metricsServer == nil {
		return
	}
	launchServer("metrics", r.metricsServer, r.logger)
}

func (r *Runner) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop rate-limited deciders to avoid ticker leaks.
	if r.decider.close != nil {
		r.decider.close()
	}

	if r.metricsStop != nil {
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", logging.Err(err))
		}
	}

	if r.metricsServer != nil {
		if err := r.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics server shutdown failed", logging.Err(err))
		}
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.Err(err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              cfg.Metrics.Addr(),
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.Err(err))
		}
	}()
}
