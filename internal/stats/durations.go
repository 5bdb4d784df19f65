// Package stats aggregates archiver run durations across invocations.
package stats

import (
	"sync"
	"time"

	"github.com/influxdata/tdigest"
)

// Durations tracks run wall times and reports quantiles. Callers that
// drive many archive operations through one process batch use this to see
// where the slow runs sit.
type Durations struct {
	mu     sync.Mutex
	digest *tdigest.TDigest
	count  int64
	total  time.Duration
	max    time.Duration
}

// NewDurations creates an empty tracker.
func NewDurations() *Durations {
	return &Durations{
		digest: tdigest.NewWithCompression(100),
	}
}

// Record adds one run's wall time.
func (d *Durations) Record(elapsed time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.digest.Add(elapsed.Seconds(), 1)
	d.count++
	d.total += elapsed
	if elapsed > d.max {
		d.max = elapsed
	}
}

// Summary is a point-in-time view of the recorded runs.
type Summary struct {
	Count int64
	Mean  time.Duration
	P50   time.Duration
	P95   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// Summary computes the current summary. Zero-valued when nothing was
// recorded yet.
func (d *Durations) Summary() Summary {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.count == 0 {
		return Summary{}
	}
	return Summary{
		Count: d.count,
		Mean:  d.total / time.Duration(d.count),
		P50:   d.quantileLocked(0.50),
		P95:   d.quantileLocked(0.95),
		P99:   d.quantileLocked(0.99),
		Max:   d.max,
	}
}

func (d *Durations) quantileLocked(q float64) time.Duration {
	return time.Duration(d.digest.Quantile(q) * float64(time.Second))
}
