package phase

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// atOnce bursts def.Users sessions at phase start, then finishes once every
// one of them has completed (spec.md §4.3.1).
type atOnce struct{}

func (a *atOnce) reserveCount(def *benchmark.Phase) int { return def.Users }

func (a *atOnce) proceed(inst *Instance) {
	inst.activeSessions.Store(int32(inst.Def.Users))
	for i := 0; i < inst.Def.Users; i++ {
		sess := inst.Acquire()
		if sess == nil {
			// Reservation sized the pool to Users for this model; a nil
			// acquire here means a build-time sizing bug, not a runtime
			// saturation event.
			continue
		}
		inst.StartSession(sess)
	}
	if inst.Def.Users == 0 {
		inst.Finish()
	}
}

// notifyFinished decrements the active count and, once every burst session
// has completed while the phase is still RUNNING, finishes the phase
// itself — AtOnce's Duration is optional, so it cannot rely on the
// scheduler's duration deadline and must end itself the way Sequentially
// does (spec.md §4.3.1: "When all
// complete, phase is finished").
func (a *atOnce) notifyFinished(inst *Instance, sess *session.Session) {
	n := inst.activeSessions.Add(-1)
	if n != 0 {
		return
	}
	if inst.Status() == Running {
		inst.Finish()
		return
	}
	inst.setTerminated()
}
