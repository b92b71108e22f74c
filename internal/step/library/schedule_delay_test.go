package library

import (
	"testing"
	"time"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// fakeClock lets tests control "now" and capture scheduled callbacks
// without running a real executor.
type fakeClock struct {
	now      int64
	deadline int64
	fn       func()
}

func (c *fakeClock) NowNanos() int64 { return c.now }
func (c *fakeClock) Schedule(at int64, fn func()) {
	c.deadline = at
	c.fn = fn
}

// fakeNotifier records Resume calls so tests can assert the step actually
// wakes the session instead of leaving it parked forever.
type fakeNotifier struct {
	resumes int
}

func (f *fakeNotifier) NotifyFinished(*session.Session)        {}
func (f *fakeNotifier) NotifyTerminated(*session.Session)      {}
func (f *fakeNotifier) Fail(*session.Session, error)           {}
func (f *fakeNotifier) Resume(*session.Session)                { f.resumes++ }

func TestScheduleDelayStepParksThenAdvancesAfterFire(t *testing.T) {
	schema := session.NewSchema()
	step := &ScheduleDelayStep{
		Delay: 100 * time.Millisecond,
		Armed: session.NewIntAccess(schema, "armed"),
		Fired: session.NewIntAccess(schema, "fired"),
	}
	sess := newSession(schema)
	clock := &fakeClock{now: 1000}
	notifier := &fakeNotifier{}
	sess.Clock = clock
	sess.Phase = notifier

	res := step.Invoke(sess)
	if res.Outcome != benchmark.Park {
		t.Fatalf("first Invoke Outcome = %v, want Park", res.Outcome)
	}
	if clock.fn == nil {
		t.Fatal("Invoke did not schedule a callback on the clock")
	}
	if clock.deadline != 1000+(100*time.Millisecond).Nanoseconds() {
		t.Fatalf("deadline = %d, want now+delay", clock.deadline)
	}

	// Re-invoking before the timer fires must keep parking.
	if res := step.Invoke(sess); res.Outcome != benchmark.Park {
		t.Fatalf("Invoke before fire Outcome = %v, want Park", res.Outcome)
	}

	clock.fn()
	if notifier.resumes != 1 {
		t.Fatalf("resumes = %d, want 1 once the timer fires", notifier.resumes)
	}

	res = step.Invoke(sess)
	if res.Outcome != benchmark.Advance {
		t.Fatalf("Invoke after fire Outcome = %v, want Advance", res.Outcome)
	}

	// The armed/fired slots must be cleared, so a later re-run of the same
	// step instance on a reset session starts fresh.
	if step.Armed.IsSet(sess.Vars) || step.Fired.IsSet(sess.Vars) {
		t.Fatal("Armed/Fired should be unset after advancing")
	}
}
