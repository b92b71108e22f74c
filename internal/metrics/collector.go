// Package metrics is the core's statistics-collector contract: session
// lifecycle and phase status-change events, aggregated with an HDR
// histogram the way a full reporting stack would consume them (spec.md §6
// — "statistics collection and histogram reporting" is an external
// collaborator with a narrow contract; this package is that collaborator's
// in-process implementation).
//
// Grounded on internal/performance/v2/metrics/engine.go's HDR-histogram
// Engine, trimmed to the events the core itself raises: it has no notion
// of bytes transferred or per-request breakdown, since those belong to the
// HTTP step library, not the phase/session core.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// PhaseStatus is one recorded phase status transition, kept for the final
// report and for tests asserting on the status sequence a run produced.
type PhaseStatus struct {
	Phase     string
	Status    string
	Timestamp time.Time
}

// Collector implements internal/phase.StatsCollector: it counts session
// starts/finishes/failures/saturation-blocks per phase and records a
// latency histogram steps can feed through RecordLatency.
type Collector struct {
	latencyHist   *hdrhistogram.Histogram
	latencyHistMu sync.Mutex

	started  atomic.Int64
	finished atomic.Int64
	failed   atomic.Int64
	blocked  atomic.Int64

	mu            sync.Mutex
	perPhase      map[string]*phaseCounters
	statusHistory []PhaseStatus

	startTime time.Time
}

type phaseCounters struct {
	started, finished, failed, blocked int64
}

// NewCollector creates a Collector with an HDR histogram covering 1
// microsecond to 1 hour at 3 significant figures — the same range
// internal/performance/v2/metrics.DefaultEngineConfig used.
func NewCollector() *Collector {
	return &Collector{
		latencyHist: hdrhistogram.New(1, 3600000000, 3),
		perPhase:    make(map[string]*phaseCounters),
		startTime:   time.Now(),
	}
}

// counters returns phase's counters, creating them on first use. The
// caller must hold c.mu.
func (c *Collector) counters(phase string) *phaseCounters {
	pc, ok := c.perPhase[phase]
	if !ok {
		pc = &phaseCounters{}
		c.perPhase[phase] = pc
	}
	return pc
}

// SessionStarted records a session beginning its scenario in phase.
func (c *Collector) SessionStarted(phase string) {
	c.started.Add(1)
	c.mu.Lock()
	c.counters(phase).started++
	c.mu.Unlock()
}

// SessionFinished records a session completing its scenario normally.
func (c *Collector) SessionFinished(phase string) {
	c.finished.Add(1)
	c.mu.Lock()
	c.counters(phase).finished++
	c.mu.Unlock()
}

// SessionFailed records a step failure. err is not retained beyond the
// count — callers that need the error itself read it off the phase
// instance via Error().
func (c *Collector) SessionFailed(phase string, err error) {
	c.failed.Add(1)
	c.mu.Lock()
	c.counters(phase).failed++
	c.mu.Unlock()
}

// SessionBlocked records a saturation event: an open-loop arrival process
// found the session pool exhausted and dropped the arriving virtual user.
func (c *Collector) SessionBlocked(phase string) {
	c.blocked.Add(1)
	c.mu.Lock()
	c.counters(phase).blocked++
	c.mu.Unlock()
}

// PhaseStatusChanged records a phase's status transition for the final
// report's timeline.
func (c *Collector) PhaseStatusChanged(phase string, status string) {
	c.mu.Lock()
	c.statusHistory = append(c.statusHistory, PhaseStatus{
		Phase: phase, Status: status, Timestamp: time.Now(),
	})
	c.mu.Unlock()
}

// RecordLatency records a step's observed latency (e.g. an HTTP request's
// round trip) into the shared histogram.
func (c *Collector) RecordLatency(d time.Duration) {
	micros := d.Microseconds()
	if micros < 1 {
		micros = 1
	}
	c.latencyHistMu.Lock()
	c.latencyHist.RecordValue(micros)
	c.latencyHistMu.Unlock()
}

// Snapshot is a point-in-time view of everything the Collector has
// recorded, suitable for a console or HTML reporter.
type Snapshot struct {
	Started, Finished, Failed, Blocked int64
	PerPhase                           map[string]PhaseSnapshot
	Latency                            LatencyStats
	Elapsed                            time.Duration
	StatusHistory                      []PhaseStatus
}

// PhaseSnapshot is one phase's slice of a Snapshot.
type PhaseSnapshot struct {
	Started, Finished, Failed, Blocked int64
}

// LatencyStats mirrors the percentile set internal/performance/v2's
// metrics engine reports.
type LatencyStats struct {
	Min, Max, Mean, StdDev         time.Duration
	P50, P90, P95, P99             time.Duration
	Count                          int64
}

// Snapshot returns the collector's current state.
func (c *Collector) Snapshot() Snapshot {
	c.latencyHistMu.Lock()
	lat := LatencyStats{
		Min:    time.Duration(c.latencyHist.Min()) * time.Microsecond,
		Max:    time.Duration(c.latencyHist.Max()) * time.Microsecond,
		Mean:   time.Duration(c.latencyHist.Mean()) * time.Microsecond,
		StdDev: time.Duration(c.latencyHist.StdDev()) * time.Microsecond,
		P50:    time.Duration(c.latencyHist.ValueAtQuantile(50)) * time.Microsecond,
		P90:    time.Duration(c.latencyHist.ValueAtQuantile(90)) * time.Microsecond,
		P95:    time.Duration(c.latencyHist.ValueAtQuantile(95)) * time.Microsecond,
		P99:    time.Duration(c.latencyHist.ValueAtQuantile(99)) * time.Microsecond,
		Count:  c.latencyHist.TotalCount(),
	}
	c.latencyHistMu.Unlock()

	c.mu.Lock()
	perPhase := make(map[string]PhaseSnapshot, len(c.perPhase))
	for name, pc := range c.perPhase {
		perPhase[name] = PhaseSnapshot{
			Started: pc.started, Finished: pc.finished,
			Failed: pc.failed, Blocked: pc.blocked,
		}
	}
	history := make([]PhaseStatus, len(c.statusHistory))
	copy(history, c.statusHistory)
	c.mu.Unlock()

	return Snapshot{
		Started:       c.started.Load(),
		Finished:      c.finished.Load(),
		Failed:        c.failed.Load(),
		Blocked:       c.blocked.Load(),
		PerPhase:      perPhase,
		Latency:       lat,
		Elapsed:       time.Since(c.startTime),
		StatusHistory: history,
	}
}
