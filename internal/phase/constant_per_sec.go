package phase

import (
	"math"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// constantPerSec starts sessions at a constant rate, an open-loop
// Poisson-rate approximation computed from elapsed wall time rather than a
// fixed-interval timer, so it self-corrects for scheduling jitter (spec.md
// §4.3.3). Formula carried over unchanged from the reference
// implementation's ConstantPerSec.proceed.
type constantPerSec struct {
	startedUsers int
}

func (c *constantPerSec) reserveCount(def *benchmark.Phase) int { return def.MaxSessionsEstimate }

func (c *constantPerSec) proceed(inst *Instance) {
	if inst.Status().IsFinished() {
		return
	}
	deltaMs := float64(inst.Exec.NowNanos()-inst.absoluteStartNs) / 1e6
	required := int(deltaMs * inst.Def.UsersPerSec / 1000)

	for i := required - c.startedUsers; i > 0; i-- {
		numActive := inst.activeSessions.Add(1)
		if numActive < 0 {
			// The phase finished between ticks of this loop.
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
	if required > c.startedUsers {
		c.startedUsers = required
	}

	// Ceiling division avoids the drift plain integer division would
	// introduce: rounding down would schedule the next arrival slightly
	// early every tick, accumulating into a rate above usersPerSec.
	nextDeltaMs := math.Ceil(1000 * float64(c.startedUsers+1) / inst.Def.UsersPerSec)
	at := inst.absoluteStartNs + int64(nextDeltaMs*1e6)
	inst.Exec.Schedule(at, func() { c.proceed(inst) })
}

func (c *constantPerSec) notifyFinished(inst *Instance, sess *session.Session) {
	inst.Pool.Release(sess)
	inst.defaultDecrement()
}
