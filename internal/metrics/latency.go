// Package metrics tracks request latency for the pointer-probe path.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Latency is a concurrency-safe microsecond histogram (1µs .. 1h, 3 digits).
type Latency struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

func NewLatency() *Latency {
	return &Latency{hist: hdrhistogram.New(1, 3600000000, 3)}
}

// Record adds one observation; durations outside the tracked range are clamped.
func (l *Latency) Record(d time.Duration) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.hist.RecordValue(us); err != nil {
		_ = l.hist.RecordValue(l.hist.HighestTrackableValue())
	}
}

// Snapshot is a point-in-time summary in microseconds.
type Snapshot struct {
	Count int64 `json:"count"`
	P50   int64 `json:"p50_us"`
	P90   int64 `json:"p90_us"`
	P99   int64 `json:"p99_us"`
	Max   int64 `json:"max_us"`
}

func (l *Latency) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Count: l.hist.TotalCount(),
		P50:   l.hist.ValueAtQuantile(50),
		P90:   l.hist.ValueAtQuantile(90),
		P99:   l.hist.ValueAtQuantile(99),
		Max:   l.hist.Max(),
	}
}

// Reset drops all observations.
func (l *Latency) Reset() {
	l.mu.Lock()
	l.hist.Reset()
	l.mu.Unlock()
}

// Middleware times each request handled by next.
func (l *Latency) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		l.Record(time.Since(start))
	})
}
