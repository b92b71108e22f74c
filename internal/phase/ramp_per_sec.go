package phase

import (
	"math"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// rampPerSec linearly ramps the arrival rate from InitialUsersPerSec to
// TargetUsersPerSec over the phase's Duration (spec.md §4.3.4). Required
// count and next-deadline formulas carried over unchanged from the
// reference implementation's RampPerSec.proceed.
type rampPerSec struct {
	startedUsers int
}

func (r *rampPerSec) reserveCount(def *benchmark.Phase) int { return def.MaxSessionsEstimate }

func (r *rampPerSec) proceed(inst *Instance) {
	if inst.Status().IsFinished() {
		return
	}
	def := inst.Def
	durationMs := float64(def.Duration.Milliseconds())
	deltaMs := float64(inst.Exec.NowNanos()-inst.absoluteStartNs) / 1e6

	required := int((deltaMs*def.InitialUsersPerSec + (def.TargetUsersPerSec-def.InitialUsersPerSec)*deltaMs*deltaMs/durationMs) / 1000)

	for i := required - r.startedUsers; i > 0; i-- {
		numActive := inst.activeSessions.Add(1)
		if numActive < 0 {
			return
		}
		sess := inst.Acquire()
		if sess == nil {
			if inst.Stats != nil {
				inst.Stats.SessionBlocked(inst.Def.Name)
			}
			// The arrival is dropped, so it no longer counts as active.
			inst.defaultDecrement()
			continue
		}
		inst.StartSession(sess)
	}
	if required > r.startedUsers {
		r.startedUsers = required
	}

	denominator := def.TargetUsersPerSec + def.InitialUsersPerSec*(durationMs-1)
	nextDeltaMs := math.Ceil(1000 * float64(r.startedUsers+1) * durationMs / denominator)
	at := inst.absoluteStartNs + int64(nextDeltaMs*1e6)
	inst.Exec.Schedule(at, func() { r.proceed(inst) })
}

func (r *rampPerSec) notifyFinished(inst *Instance, sess *session.Session) {
	inst.Pool.Release(sess)
	inst.defaultDecrement()
}
