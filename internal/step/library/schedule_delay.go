package library

import (
	"time"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// ScheduleDelayStep parks a sequence instance for a fixed duration without
// blocking the executor: on its first invocation it schedules a callback on
// the session's Clock (spec.md §3 — "steps may enqueue follow-ups on the
// session's scheduled-actions queue") and parks; the executor fires that
// callback once its clock reaches the deadline, which flips a private
// session variable and resumes the session so the interpreter observes it.
//
// Armed and Fired are bound once, at scenario-build time, against the
// scenario's variable schema — one pair of slots per ScheduleDelayStep
// instance in the scenario, shared by every session that runs it.
type ScheduleDelayStep struct {
	Delay  time.Duration
	Armed  session.Access
	Fired  session.Access
}

func (s *ScheduleDelayStep) Invoke(sess *session.Session) benchmark.Result {
	if !s.Armed.IsSet(sess.Vars) {
		s.Armed.SetInt(sess.Vars, 1)
		deadline := sess.Clock.NowNanos() + s.Delay.Nanoseconds()
		fired := s.Fired
		sess.Clock.Schedule(deadline, func() {
			fired.SetInt(sess.Vars, 1)
			sess.Phase.Resume(sess)
		})
		return benchmark.ResultPark()
	}
	if s.Fired.IsSet(sess.Vars) && s.Fired.GetInt(sess.Vars) == 1 {
		s.Armed.Unset(sess.Vars)
		s.Fired.Unset(sess.Vars)
		return benchmark.ResultAdvance()
	}
	return benchmark.ResultPark()
}
