package phase

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// always keeps exactly def.Users sessions active for the phase's duration,
// replacing completions immediately instead of releasing them (spec.md
// §4.3.2) — a closed-loop model that cannot saturate the pool.
type always struct{}

func (a *always) reserveCount(def *benchmark.Phase) int { return def.Users }

func (a *always) proceed(inst *Instance) {
	inst.activeSessions.Store(int32(inst.Def.Users))
	for i := 0; i < inst.Def.Users; i++ {
		sess := inst.Acquire()
		if sess == nil {
			continue
		}
		inst.StartSession(sess)
	}
}

func (a *always) notifyFinished(inst *Instance, sess *session.Session) {
	if inst.Status().IsFinished() {
		inst.defaultDecrement()
		return
	}
	sess.Reset()
	inst.StartSession(sess)
}
