package benchmark

import "github.com/Praveenmail2him/Hyperfoil/internal/session"

// Outcome is what happened when the interpreter invoked a Step against a
// session (spec.md §4.2: "invoke(session) -> Action, where Action is one of
// advance, park, fail(error), terminateSession").
type Outcome int

const (
	// Advance means the step completed; the interpreter moves the
	// sequence's program counter to the next step.
	Advance Outcome = iota
	// Park means the step is not ready yet (a predicate returned false, a
	// resource wasn't available); the interpreter leaves the program
	// counter where it is and will retry the same step later, either on
	// an explicit wakeup or the executor's optimistic repoll.
	Park
	// Fail means the step raised an error; the owning session is handed
	// to its phase's Fail path and the sequence does not advance further.
	Fail
	// TerminateSession means the step wants its session dropped
	// immediately, bypassing the rest of the scenario.
	TerminateSession
)

func (o Outcome) String() string {
	switch o {
	case Advance:
		return "advance"
	case Park:
		return "park"
	case Fail:
		return "fail"
	case TerminateSession:
		return "terminateSession"
	default:
		return "unknown"
	}
}

// Result is the full answer a Step gives the interpreter for one Invoke
// call: the outcome, and — only when Outcome is Fail — the error that
// caused it.
type Result struct {
	Outcome Outcome
	Err     error
}

// Helpers for the common cases, so step implementations read as a single
// return statement instead of spelling out the struct literal each time.

func ResultAdvance() Result { return Result{Outcome: Advance} }
func ResultPark() Result    { return Result{Outcome: Park} }
func ResultFail(err error) Result {
	return Result{Outcome: Fail, Err: err}
}
func ResultTerminate() Result { return Result{Outcome: TerminateSession} }

// Step is one action in a Sequence. Invoke is called repeatedly by the
// interpreter — once per tick — until it returns something other than Park
// (spec.md §4.2). Implementations must not block: a step that needs to wait
// on I/O or a timer registers a callback elsewhere (the HTTP client pool,
// the session's Clock) and returns Park until that callback flips a session
// variable the step is watching and calls sess.Phase.Resume(sess).
//
// Defined in the benchmark package, not the step package, so that Sequence
// (below) can hold a []Step without benchmark importing step — the step
// package imports benchmark and session, not the other way around.
type Step interface {
	Invoke(sess *session.Session) Result
}
