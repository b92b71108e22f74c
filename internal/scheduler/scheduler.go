// Package scheduler implements Component E: the global coordinator that
// starts, finishes, and terminates phase instances in dependency order,
// independent of the per-executor work each phase instance drives (spec.md
// §4.4).
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Praveenmail2him/Hyperfoil/internal/phase"
)

// Clock lets the scheduler read wall time without importing a specific
// executor implementation.
type Clock interface {
	NowNanos() int64
}

// entry pairs a phase instance with the definition fields the scheduler
// needs to evaluate its ready predicate and deadlines, without reaching
// back into benchmark.Phase on every tick.
type entry struct {
	inst                 *phase.Instance
	name                 string
	startAfter           []string
	startAfterStrict     []string
	terminateAfterStrict []string
	startTime            *time.Duration
	duration             time.Duration
	maxDuration          *time.Duration

	// startedAt is when the scheduler started this phase (unix
	// nanoseconds); duration and maxDuration are measured from it.
	startedAt int64
}

// Scheduler owns every phase instance in one benchmark run and drives them
// through the state machine of spec.md §4.5.
type Scheduler struct {
	clock   Clock
	entries []*entry

	mu         sync.Mutex
	cond       *sync.Cond
	benchStart int64
}

// New creates a Scheduler bound to clock. benchmarkStart is recorded on the
// first call to Run.
func New(clock Clock) *Scheduler {
	s := &Scheduler{clock: clock}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Add registers inst with the scheduler, along with the dependency and
// timing fields from its definition.
func (s *Scheduler) Add(inst *phase.Instance) {
	def := inst.Def
	e := &entry{
		inst:                 inst,
		name:                 def.Name,
		startAfter:           def.StartAfter,
		startAfterStrict:     def.StartAfterStrict,
		terminateAfterStrict: def.TerminateAfterStrict,
		startTime:            def.StartTime,
		duration:             def.Duration,
		maxDuration:          def.MaxDuration,
	}
	inst.OnStatusChange = func(*phase.Instance) { s.wake() }
	s.entries = append(s.entries, e)
}

func (s *Scheduler) byName(name string) *entry {
	for _, e := range s.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (s *Scheduler) wake() {
	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Run drives every phase to TERMINATED, blocking until the benchmark
// completes or ctx is cancelled. It implements the per-tick contract of
// spec.md §4.4: recompute ready predicates, fire finish/terminate
// deadlines, and sleep on a condition variable between ticks with a
// timeout equal to the nearest upcoming deadline.
func (s *Scheduler) Run(ctx context.Context) error {
	s.benchStart = s.clock.NowNanos()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		nextDeadline, allTerminated := s.tick()
		if allTerminated {
			return s.firstError()
		}

		s.waitUntil(ctx, nextDeadline)
	}
}

// tick runs one pass of the per-tick contract and returns the nearest
// upcoming deadline (unix nanoseconds, 0 meaning "no deadline known — wait
// for a status-change signal only") and whether every phase has reached
// TERMINATED.
func (s *Scheduler) tick() (nextDeadline int64, allTerminated bool) {
	now := s.clock.NowNanos()
	allTerminated = true
	var soonest int64

	for _, e := range s.entries {
		st := e.inst.Status()
		switch st {
		case phase.NotStarted:
			allTerminated = false
			if s.ready(e, now) {
				e.startedAt = now
				e.inst.Start()
			} else if d := s.startDeadline(e); d > 0 {
				soonest = earliest(soonest, d)
			}
		case phase.Running:
			allTerminated = false
			finishAt := e.startedAt + e.durationDeadline()
			if e.duration > 0 && now >= finishAt {
				e.inst.Finish()
			} else if e.duration > 0 {
				soonest = earliest(soonest, finishAt)
			}
			if e.maxDuration != nil {
				maxAt := e.startedAt + e.maxDuration.Nanoseconds()
				if now >= maxAt {
					e.inst.Terminate()
				} else {
					soonest = earliest(soonest, maxAt)
				}
			}
		case phase.Finished:
			allTerminated = false
			if len(e.terminateAfterStrict) > 0 && s.allTerminated(e.terminateAfterStrict) {
				e.inst.Terminate()
			}
		case phase.Terminating:
			allTerminated = false
		case phase.Terminated:
			// already done
		}
	}

	return soonest, allTerminated
}

func (e *entry) durationDeadline() int64 {
	return e.duration.Nanoseconds()
}

// ready reports whether e's dependencies are satisfied and, if it has an
// absolute startTime, whether now has reached it.
func (s *Scheduler) ready(e *entry, now int64) bool {
	for _, dep := range e.startAfter {
		d := s.byName(dep)
		if d == nil || d.inst.Status() < phase.Finished {
			return false
		}
	}
	for _, dep := range e.startAfterStrict {
		d := s.byName(dep)
		if d == nil || d.inst.Status() != phase.Terminated {
			return false
		}
	}
	if e.startTime != nil {
		if now < s.benchStart+e.startTime.Nanoseconds() {
			return false
		}
	}
	return true
}

// startDeadline returns the earliest time e's own startTime constraint
// could next matter, or 0 if e has none (its readiness then depends purely
// on other phases' status changes, which wake the scheduler directly).
func (s *Scheduler) startDeadline(e *entry) int64 {
	if e.startTime == nil {
		return 0
	}
	return s.benchStart + e.startTime.Nanoseconds()
}

func (s *Scheduler) allTerminated(names []string) bool {
	for _, name := range names {
		e := s.byName(name)
		if e == nil || e.inst.Status() != phase.Terminated {
			return false
		}
	}
	return true
}

func (s *Scheduler) firstError() error {
	for _, e := range s.entries {
		if err := e.inst.Error(); err != nil {
			return err
		}
	}
	return nil
}

func earliest(soonest, candidate int64) int64 {
	if soonest == 0 || candidate < soonest {
		return candidate
	}
	return soonest
}

// waitUntil blocks on the status-change condition variable until either a
// status changes, ctx is cancelled, or deadlineNs (unix nanoseconds) is
// reached — spec.md §4.4's "wait... with a timeout equal to the nearest
// upcoming deadline".
func (s *Scheduler) waitUntil(ctx context.Context, deadlineNs int64) {
	timeout := 50 * time.Millisecond
	if deadlineNs > 0 {
		if d := time.Duration(deadlineNs - s.clock.NowNanos()); d > 0 {
			timeout = d
		} else {
			timeout = 0
		}
	}

	done := make(chan struct{})
	go func() {
		s.mu.Lock()
		timer := time.AfterFunc(timeout, s.wake)
		s.cond.Wait()
		timer.Stop()
		s.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.wake()
		<-done
	}
}
