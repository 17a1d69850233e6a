package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/mascot-madness/internal/config"
	"github.com/preston-bernstein/mascot-madness/internal/logging"
	"github.com/preston-bernstein/mascot-madness/internal/runner"
)

const (
	appName    = "mascot-madness"
	appVersion = "dev"
)

func main() {
	// A missing .env is normal; the environment is used as-is.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type flags struct {
	bracket  string
	output   string
	json     string
	decider  string
	parallel bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "madness",
		Short: "Run a 64-team mascot fight bracket to a champion",
		Long: `madness plays all 63 games of a four-region bracket, letting a decider
settle each mascot fight, and writes a full results report.

Without ANTHROPIC_API_KEY the deterministic offline decider is used.`,
		Version:       appVersion,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := applyFlags(cmd, config.Load(), f)
			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.bracket, "bracket", "", "bracket file (.txt or .yaml)")
	fs.StringVar(&f.output, "output", "", "text report path")
	fs.StringVar(&f.json, "json", "", "optional JSON results path")
	fs.StringVar(&f.decider, "decider", "", "decider: auto, mock or anthropic")
	fs.BoolVar(&f.parallel, "parallel", false, "play the four regions concurrently")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// applyFlags overrides environment configuration with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg config.Config, f flags) config.Config {
	changed := cmd.Flags().Changed
	if changed("bracket") {
		cfg.BracketFile = f.bracket
	}
	if changed("output") {
		cfg.OutputFile = f.output
	}
	if changed("json") {
		cfg.ResultsJSON = f.json
	}
	if changed("decider") {
		cfg.Decider = f.decider
	}
	if changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	return cfg
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})

	r, err := runner.New(cfg, logger)
	if err != nil {
		return err
	}
	res, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tournament complete! Champion: %s. Results written to %s\n", res.Champion.Name, cfg.OutputFile)
	return nil
}
