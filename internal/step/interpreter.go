// Package step drives a session's sequences to completion: it holds the
// per-session runtime state (which sequence instances are active, and each
// one's program counter) and the tick loop that invokes steps until they
// stop advancing.
//
// It imports both internal/benchmark (for Sequence, Step, Outcome) and
// internal/session (for Session), which is why this bookkeeping cannot live
// on session.Session itself: session must not import benchmark.
package step

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// sequenceInstance is one running copy of a benchmark.Sequence: the
// sequence definition plus a program counter into its Steps.
type sequenceInstance struct {
	seq  *benchmark.Sequence
	pc   int
	done bool
}

// Runner is the step interpreter's state for a single session: every
// currently-running sequence instance, plus the scenario it was built
// from (needed to instantiate named templates via StartSequence).
//
// A Runner is stashed on session.Session.Runtime by Start and retrieved by
// Tick; callers never construct one directly.
type Runner struct {
	scenario  *benchmark.Scenario
	instances []*sequenceInstance
}

// Start begins running scenario on sess: every initial sequence gets a
// fresh instance at PC 0, and the Runner is attached to sess.Runtime ready
// for the first Tick.
func Start(sess *session.Session, scenario *benchmark.Scenario) {
	r := &Runner{scenario: scenario}
	for _, seq := range scenario.InitialSequences {
		r.instances = append(r.instances, &sequenceInstance{seq: seq})
	}
	sess.Runtime = r
}

// StartSequence instantiates the named template sequence on sess and adds
// it to the set of concurrently-running instances. It is the follow-up
// action a step uses to fork a new sequence at runtime (spec.md's
// supplemented sequence-template feature). Returns false if no template is
// registered under that name.
func StartSequence(sess *session.Session, name string) bool {
	r, ok := sess.Runtime.(*Runner)
	if !ok {
		return false
	}
	seq, ok := r.scenario.Template(name)
	if !ok {
		return false
	}
	r.instances = append(r.instances, &sequenceInstance{seq: seq})
	return true
}

// TickResult is what Tick found after driving sess as far as it could go
// without blocking.
type TickResult int

const (
	// Continue means at least one sequence instance is still running
	// (parked or mid-flight); the session will be re-ticked later.
	Continue TickResult = iota
	// Finished means every sequence instance reached the end of its
	// steps normally.
	Finished
	// Failed means a step returned Fail; Tick returns the step's error
	// alongside it.
	Failed
	// Terminated means a step returned TerminateSession.
	Terminated
)

// Tick drives every non-done sequence instance on sess forward until each
// either parks, finishes, fails, or terminates the session — mirroring the
// reference interpreter's invoke/advance/park loop (spec.md §4.2).
//
// It never blocks: a step that is not ready returns Park and Tick moves on
// to the next instance, leaving that instance's PC untouched for the next
// call.
func Tick(sess *session.Session) (TickResult, error) {
	r, ok := sess.Runtime.(*Runner)
	if !ok {
		return Finished, nil
	}

	allDone := true
	for _, inst := range r.instances {
		if inst.done {
			continue
		}
		for {
			if inst.pc >= len(inst.seq.Steps) {
				inst.done = true
				break
			}
			res := inst.seq.Steps[inst.pc].Invoke(sess)
			switch res.Outcome {
			case benchmark.Advance:
				inst.pc++
				continue
			case benchmark.Park:
				allDone = false
			case benchmark.Fail:
				return Failed, res.Err
			case benchmark.TerminateSession:
				return Terminated, nil
			}
			break
		}
		if !inst.done {
			allDone = false
		}
	}

	if allDone {
		return Finished, nil
	}
	return Continue, nil
}
