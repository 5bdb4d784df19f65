package stats

import (
	"sync"
	"testing"
	"time"
)

func TestDurations_EmptySummary(t *testing.T) {
	d := NewDurations()
	s := d.Summary()
	if s.Count != 0 || s.Mean != 0 || s.P99 != 0 || s.Max != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
}

func TestDurations_SingleSample(t *testing.T) {
	d := NewDurations()
	d.Record(200 * time.Millisecond)

	s := d.Summary()
	if s.Count != 1 {
		t.Errorf("Count = %d, want 1", s.Count)
	}
	if s.Mean != 200*time.Millisecond {
		t.Errorf("Mean = %v, want 200ms", s.Mean)
	}
	if s.Max != 200*time.Millisecond {
		t.Errorf("Max = %v, want 200ms", s.Max)
	}
}

func TestDurations_QuantilesOrdered(t *testing.T) {
	d := NewDurations()
	for i := 1; i <= 1000; i++ {
		d.Record(time.Duration(i) * time.Millisecond)
	}

	s := d.Summary()
	if s.Count != 1000 {
		t.Fatalf("Count = %d, want 1000", s.Count)
	}
	if !(s.P50 <= s.P95 && s.P95 <= s.P99 && s.P99 <= s.Max) {
		t.Errorf("quantiles out of order: p50=%v p95=%v p99=%v max=%v",
			s.P50, s.P95, s.P99, s.Max)
	}
	// The digest is approximate; the median should land near 500ms.
	if s.P50 < 400*time.Millisecond || s.P50 > 600*time.Millisecond {
		t.Errorf("P50 = %v, want roughly 500ms", s.P50)
	}
	if s.Max != time.Second {
		t.Errorf("Max = %v, want 1s", s.Max)
	}
}

func TestDurations_ConcurrentRecords(t *testing.T) {
	d := NewDurations()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				d.Record(10 * time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if s := d.Summary(); s.Count != 800 {
		t.Errorf("Count = %d, want 800", s.Count)
	}
}
