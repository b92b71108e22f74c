package phase

import (
	"time"

	"github.com/Praveenmail2him/Hyperfoil/internal/session"
	"github.com/Praveenmail2him/Hyperfoil/internal/step"
)

// pollInterval bounds how long a session parked on a condition with no
// explicit wake source (AwaitSharedCounterStep, AwaitVarStep) can go
// without being re-evaluated. Steps that park on an external callback
// (HttpRequestStep, ScheduleDelayStep) call sess.Phase.Resume themselves
// and advance well before this fires; it only matters for the await-style
// steps the reference interpreter's "optimistic repoll" covers.
const pollInterval = 10 * time.Millisecond

// resolved marks sess.Runtime once a session has finished, failed, or been
// terminated, so a stale poll or a redundant Resume arriving after
// resolution (a scheduled repoll racing the real wakeup that got there
// first) is a safe no-op instead of re-notifying the phase a second time.
type resolved struct{}

// Run drives sess forward by one tick: starting its scenario if this is
// its first tick, then invoking the step interpreter until it parks,
// finishes, fails, or terminates the session, routing the outcome back
// through inst's PhaseNotifier methods.
//
// Both an arrival process (on acquiring a fresh session) and the
// executor's wake sources (re-ticking an already-running, parked session)
// call this — it is the one place session lifecycle outcomes turn into
// phase-level bookkeeping.
func Run(inst *Instance, sess *session.Session) {
	if _, done := sess.Runtime.(resolved); done {
		return
	}
	if sess.Runtime == nil {
		step.Start(sess, inst.Def.Scenario)
	}
	result, err := step.Tick(sess)
	switch result {
	case step.Continue:
		inst.Exec.Schedule(inst.Exec.NowNanos()+pollInterval.Nanoseconds(), func() {
			Run(inst, sess)
		})
	case step.Finished:
		sess.Runtime = resolved{}
		inst.NotifyFinished(sess)
	case step.Failed:
		sess.Runtime = resolved{}
		inst.Fail(sess, err)
		inst.NotifyTerminated(sess)
	case step.Terminated:
		sess.Runtime = resolved{}
		inst.NotifyTerminated(sess)
	}
}
