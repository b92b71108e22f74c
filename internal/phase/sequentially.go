package phase

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// sequentially runs one session at a time, def.Repeats times, transitioning
// to TERMINATING once the last repeat's session finishes (spec.md §4.3.5).
type sequentially struct {
	counter int
}

func (s *sequentially) reserveCount(def *benchmark.Phase) int { return 1 }

func (s *sequentially) proceed(inst *Instance) {
	inst.activeSessions.Add(1)
	sess := inst.Acquire()
	if sess == nil {
		return
	}
	inst.StartSession(sess)
}

func (s *sequentially) notifyFinished(inst *Instance, sess *session.Session) {
	s.counter++
	if s.counter >= inst.Def.Repeats {
		inst.Terminate()
		inst.defaultDecrement()
		return
	}
	sess.Reset()
	inst.StartSession(sess)
}
