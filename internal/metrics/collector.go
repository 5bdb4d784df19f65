// Package metrics provides Prometheus metrics for sevenrun.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sevenrun/sevenrun/internal/process"
)

// Outcome labels for the run outcome counter.
const (
	OutcomeSuccess     = "success"
	OutcomeExitCode    = "exit_code"
	OutcomeSignal      = "signal"
	OutcomeLaunchError = "launch_error"
)

// Collector tracks archiver run lifecycle metrics.
type Collector struct {
	runsStarted prometheus.Counter
	runOutcomes *prometheus.CounterVec
	signalsSent *prometheus.CounterVec
	runSeconds  prometheus.Histogram
}

// NewCollector creates a collector and registers its metrics.
func NewCollector(registry prometheus.Registerer) *Collector {
	c := &Collector{
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sevenrun_runs_started_total",
			Help: "Archiver processes launched",
		}),
		runOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sevenrun_run_outcomes_total",
			Help: "Classified archiver run outcomes",
		}, []string{"outcome"}),
		signalsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sevenrun_termination_signals_total",
			Help: "Termination signals delivered to archiver processes",
		}, []string{"signal"}),
		runSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sevenrun_run_duration_seconds",
			Help:    "Wall time of archiver runs",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 16),
		}),
	}

	registry.MustRegister(
		c.runsStarted,
		c.runOutcomes,
		c.signalsSent,
		c.runSeconds,
	)
	return c
}

// RunStarted records one process launch.
func (c *Collector) RunStarted() {
	c.runsStarted.Inc()
}

// RunFinished records the classified outcome and wall time of one run.
func (c *Collector) RunFinished(outcome string, elapsed time.Duration) {
	c.runOutcomes.WithLabelValues(outcome).Inc()
	c.runSeconds.Observe(elapsed.Seconds())
}

// SignalSent records one delivered termination signal ("SIGTERM", "SIGKILL").
func (c *Collector) SignalSent(signal string) {
	c.signalsSent.WithLabelValues(signal).Inc()
}

// OutcomeFor maps a settled watch result to an outcome label.
func OutcomeFor(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Signal != "" {
			return OutcomeSignal
		}
		return OutcomeExitCode
	}
	return OutcomeLaunchError
}
