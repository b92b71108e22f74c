package library

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// NoopStep always advances. Useful as a scenario placeholder and in tests.
type NoopStep struct{}

func (NoopStep) Invoke(*session.Session) benchmark.Result {
	return benchmark.ResultAdvance()
}

// TerminateStep always terminates the session, bypassing the rest of the
// scenario.
type TerminateStep struct{}

func (TerminateStep) Invoke(*session.Session) benchmark.Result {
	return benchmark.ResultTerminate()
}

// FailStep always fails with Err, for exercising the interpreter's fail
// path in tests.
type FailStep struct {
	Err error
}

func (s FailStep) Invoke(*session.Session) benchmark.Result {
	return benchmark.ResultFail(s.Err)
}
