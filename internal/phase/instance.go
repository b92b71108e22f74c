// Package phase implements Component D: one running copy of a phase
// definition. An Instance owns an arrival process, the active-session
// count that synchronizes it with the scheduler, and the status state
// machine of spec.md §4.5.
//
// Grounded throughout on PhaseInstanceImpl.java: the activeSessions
// sentinel protocol (a CAS from 0 to a minimum-int sentinel, so a late
// notifyFinished racing against finish()/terminate() can never un-sentinel
// the counter) is carried over unchanged in meaning.
package phase

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/pool"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// sentinel marks activeSessions as "this phase will never have active
// sessions again" — set by a successful CompareAndSwap from 0, so any
// notifyFinished that arrives afterward sees a sentinel value rather than a
// small positive count it could mistakenly believe means "still running".
const sentinel = math.MinInt32

// Executor is the narrow view of the owning single-threaded executor an
// Instance needs to self-schedule its arrival process and to know "now".
type Executor interface {
	Schedule(at int64, fn func())
	Post(fn func())
	NowNanos() int64
}

// StatsCollector is the narrow statistics contract an Instance reports
// through: session lifecycle events and phase status changes (spec.md §6).
type StatsCollector interface {
	SessionStarted(phase string)
	SessionFinished(phase string)
	SessionFailed(phase string, err error)
	SessionBlocked(phase string)
	PhaseStatusChanged(phase string, status string)
}

// arrivalProcess is the per-Kind strategy an Instance delegates to: how to
// drive the arrival loop, how many sessions to reserve, and how a
// completing session should be handled (the three places the five models
// in spec.md §4.3 actually differ).
type arrivalProcess interface {
	proceed(inst *Instance)
	reserveCount(def *benchmark.Phase) int
	notifyFinished(inst *Instance, sess *session.Session)
}

// Instance is one running copy of a benchmark.Phase.
type Instance struct {
	Def   *benchmark.Phase
	Pool  *pool.Pool
	Exec  Executor
	Stats StatsCollector

	// OnStatusChange is called after every status transition, on the
	// instance's own executor goroutine, so the scheduler can wake its
	// condition variable (spec.md §4.4 — "wake whenever any phase
	// transitions status").
	OnStatusChange func(*Instance)

	arrival arrivalProcess

	status           atomic.Int32
	absoluteStartNs  int64
	activeSessions   atomic.Int32

	errMu sync.Mutex
	err   error
}

// NewInstance builds an Instance for def, dispatching on def.Kind to pick
// the arrival process — the single dispatch function that replaces the
// reference implementation's class-keyed constructor map (spec.md §9).
func NewInstance(def *benchmark.Phase, sessPool *pool.Pool, exec Executor, stats StatsCollector) *Instance {
	inst := &Instance{
		Def:   def,
		Pool:  sessPool,
		Exec:  exec,
		Stats: stats,
	}
	switch def.Kind {
	case benchmark.AtOnce:
		inst.arrival = &atOnce{}
	case benchmark.Always:
		inst.arrival = &always{}
	case benchmark.ConstantPerSec:
		inst.arrival = &constantPerSec{}
	case benchmark.RampPerSec:
		inst.arrival = &rampPerSec{}
	case benchmark.Sequentially:
		inst.arrival = &sequentially{}
	}
	return inst
}

// ReserveCount returns how many sessions the pool should reserve for this
// phase, per its arrival process.
func (inst *Instance) ReserveCount() int {
	return inst.arrival.reserveCount(inst.Def)
}

// Status returns the instance's current state. Lock-free, as in the
// reference implementation's volatile read.
func (inst *Instance) Status() Status {
	return Status(inst.status.Load())
}

func (inst *Instance) setStatus(s Status) {
	inst.status.Store(int32(s))
	if inst.Stats != nil {
		inst.Stats.PhaseStatusChanged(inst.Def.Name, s.String())
	}
	if inst.OnStatusChange != nil {
		inst.OnStatusChange(inst)
	}
}

// Start transitions NOT_STARTED -> RUNNING and kicks off the arrival
// process. Called by the scheduler once the phase's ready predicate holds.
func (inst *Instance) Start() {
	inst.absoluteStartNs = inst.Exec.NowNanos()
	inst.setStatus(Running)
	inst.arrival.proceed(inst)
}

// Finish transitions RUNNING -> FINISHED. If no session is currently
// active, it completes the sentinel CAS immediately and the phase jumps
// straight to TERMINATED.
func (inst *Instance) Finish() {
	inst.setStatus(Finished)
	if inst.activeSessions.CompareAndSwap(0, sentinel) {
		inst.setStatus(Terminated)
	}
}

// Terminate transitions to TERMINATING from RUNNING or FINISHED — a hard
// stop driven by maxDuration or a terminateAfterStrict dependency.
func (inst *Instance) Terminate() {
	inst.setStatus(Terminating)
	if inst.activeSessions.CompareAndSwap(0, sentinel) {
		inst.setStatus(Terminated)
	}
}

// Fail records err and forces the phase to TERMINATING.
func (inst *Instance) Fail(sess *session.Session, err error) {
	inst.errMu.Lock()
	if inst.err == nil {
		inst.err = err
	}
	inst.errMu.Unlock()
	if inst.Stats != nil {
		inst.Stats.SessionFailed(inst.Def.Name, err)
	}
	inst.Terminate()
}

// Error returns the first error recorded by Fail, or nil.
func (inst *Instance) Error() error {
	inst.errMu.Lock()
	defer inst.errMu.Unlock()
	return inst.err
}

// NotifyFinished implements session.PhaseNotifier: a session's scenario ran
// to normal completion. Delegated to the arrival process, since Always and
// Sequentially re-drive the session instead of decrementing.
func (inst *Instance) NotifyFinished(sess *session.Session) {
	if inst.Stats != nil {
		inst.Stats.SessionFinished(inst.Def.Name)
	}
	inst.arrival.notifyFinished(inst, sess)
}

// Resume implements session.PhaseNotifier: an external event (an HTTP
// response, a scheduled delay) that a parked step was waiting on has
// happened, so the session's interpreter is re-ticked.
func (inst *Instance) Resume(sess *session.Session) {
	Run(inst, sess)
}

// NotifyTerminated implements session.PhaseNotifier: a step dropped the
// session via the terminateSession outcome. Treated identically to a
// normal decrement — the session just doesn't get to run again this cycle.
func (inst *Instance) NotifyTerminated(sess *session.Session) {
	inst.defaultDecrement()
}

// defaultDecrement is the shared "decrement active count, and if it
// reaches zero while the phase is already finished, complete the sentinel
// CAS" logic every arrival process's notifyFinished ultimately bottoms out
// in (PhaseInstanceImpl.notifyFinished/notifyTerminated in the reference
// implementation).
func (inst *Instance) defaultDecrement() {
	n := inst.activeSessions.Add(-1)
	if n == 0 {
		inst.setTerminated()
	}
}

// setTerminated completes the FINISHED/TERMINATING -> TERMINATED edge once
// the active-session count has naturally drained to zero (rather than via
// the immediate CAS in Finish/Terminate).
func (inst *Instance) setTerminated() {
	if inst.Status().IsFinished() {
		inst.setStatus(Terminated)
	}
}

// Acquire asks the pool for a free session. A nil result means the pool is
// exhausted — callers other than the open-loop models must never see this,
// since closed models size their reservation exactly to their population.
func (inst *Instance) Acquire() *session.Session {
	return inst.Pool.Acquire()
}

// StartSession binds sess to this phase instance and begins running its
// scenario, then drives it forward until it first parks, finishes, fails,
// or terminates. Called by an arrival process immediately after acquiring
// a fresh session.
func (inst *Instance) StartSession(sess *session.Session) {
	sess.Bind(inst, inst.Exec)
	if inst.Stats != nil {
		inst.Stats.SessionStarted(inst.Def.Name)
	}
	Run(inst, sess)
}
