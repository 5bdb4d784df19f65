// Package main provides the sevenrun CLI entry point.
//
// sevenrun drives a 7-Zip style archiver as a child process: it normalizes
// the argument vector, fans the archiver's output into the caller-facing
// streams, and turns the raw exit state into a classified result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sevenrun/sevenrun/internal/config"
	"github.com/sevenrun/sevenrun/internal/logging"
	"github.com/sevenrun/sevenrun/internal/metrics"
	"github.com/sevenrun/sevenrun/internal/process"
	"github.com/sevenrun/sevenrun/internal/sevenzip"
	"github.com/sevenrun/sevenrun/internal/stats"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/sevenrun
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag early (before flag parsing)
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-version" || arg == "--version" || arg == "version" {
			fmt.Printf("sevenrun %s\n", version)
			return 0
		}
	}

	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return 2
	}

	logger := logging.New(logging.Options{Format: cfg.LogFormat, Level: cfg.LogLevel})
	slog.SetDefault(logger)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	runner := sevenzip.NewRunner(&sevenzip.Config{
		BinaryPath:  cfg.BinaryPath,
		Interactive: cfg.Interactive,
		WorkDir:     cfg.WorkDir,
		Env:         cfg.Env,
		Shell:       cfg.Shell,
	})

	if cfg.PrintCmd {
		fmt.Println(runner.CommandString(cfg.RawArgs))
		return 0
	}

	var collector *metrics.Collector
	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		collector = metrics.NewCollector(registry)
		srv := metrics.NewServer(cfg.MetricsAddr, registry, logger)
		if err := srv.Start(); err != nil {
			logger.Error("metrics_server_start_failed", "error", err)
			return 2
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	outcome, elapsed, recent := execute(cfg, runner, collector, logger)

	if collector != nil {
		collector.RunFinished(metrics.OutcomeFor(outcome), elapsed)
	}

	if outcome == nil {
		logger.Info("run_succeeded", "elapsed", elapsed.String())
		return 0
	}
	printFailure(outcome, recent)
	return exitCode(outcome)
}

// execute runs the archiver once and blocks until the outcome settles and
// both streams are drained.
func execute(cfg *config.Config, runner *sevenzip.Runner, collector *metrics.Collector, logger *slog.Logger) (outcome error, elapsed time.Duration, recent []string) {
	d, err := process.Prepare(runner.Invocation(cfg.RawArgs), cfg.Interactive)
	if err != nil {
		return err, 0, nil
	}

	logger.Info("run_started",
		"cmd", d.CommandLine(),
		"workdir", d.Dir(),
		"interactive", cfg.Interactive,
	)

	start := time.Now()
	h := d.Execute()
	if collector != nil {
		collector.RunStarted()
	}

	// The primary stream passes through to stdout; a tail of it feeds the
	// failure report. The diagnostic stream is drained at debug level.
	outTail := logging.NewTail("output", logger)
	progTail := logging.NewTail("progress", logger)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		outTail.Consume(io.TeeReader(d.Output(), os.Stdout))
	}()
	go func() {
		defer wg.Done()
		progTail.Consume(d.Progress())
	}()

	// Ctrl+C forwards into graceful termination instead of dying with the
	// child still running.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigc)
		close(sigc)
	}()
	go func() {
		sig, ok := <-sigc
		if !ok {
			return
		}
		logger.Warn("termination_requested", "signal", sig.String(), "kill_grace", cfg.KillGrace.String())
		if collector != nil {
			collector.SignalSent("SIGTERM")
		}
		<-process.TerminateAfter(h, cfg.KillGrace)
	}()

	outcome = <-process.WatchDescriptor(d, h)
	elapsed = time.Since(start)
	wg.Wait()

	recordRun(collector, h, elapsed, logger)
	return outcome, elapsed, outTail.Recent()
}

// runDurations aggregates run wall times across execute calls. The CLI
// process performs exactly one run, so the logged summary describes that
// single sample; the distribution only fills in when execute is driven
// repeatedly within one process.
var runDurations = stats.NewDurations()

// recordRun feeds the duration tracker and notes a kill escalation.
func recordRun(collector *metrics.Collector, h *process.Handle, elapsed time.Duration, logger *slog.Logger) {
	runDurations.Record(elapsed)
	s := runDurations.Summary()
	logger.Debug("run_stats",
		"elapsed", elapsed.String(),
		"count", s.Count,
		"mean", s.Mean.String(),
		"p95", s.P95.String(),
		"max", s.Max.String(),
	)

	if _, sig := h.ExitState(); sig == "SIGKILL" && collector != nil {
		collector.SignalSent("SIGKILL")
	}
}

// printFailure renders the classified failure plus the tail of the
// archiver's own output.
func printFailure(err error, recent []string) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintln(os.Stderr, "archiver run failed")
	fmt.Fprintln(os.Stderr, err.Error())

	if len(recent) == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(os.Stderr, "recent archiver output:")
	for _, line := range recent {
		fmt.Fprintf(os.Stderr, "  %s\n", line)
	}
}

// exitCode mirrors the child's exit status where one exists.
func exitCode(err error) int {
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Status != nil && *exitErr.Status > 0 {
			return *exitErr.Status
		}
		return 1
	}
	// Launch failures: the shell convention for "command not found".
	return 127
}
