package library

import (
	"testing"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

func newSession(schema *session.Schema) *session.Session {
	return session.NewSession(1, session.NewThreadData(), schema)
}

func TestNoopStepAdvances(t *testing.T) {
	res := NoopStep{}.Invoke(nil)
	if res.Outcome != benchmark.Advance {
		t.Fatalf("Outcome = %v, want Advance", res.Outcome)
	}
}

func TestTerminateStepTerminates(t *testing.T) {
	res := TerminateStep{}.Invoke(nil)
	if res.Outcome != benchmark.TerminateSession {
		t.Fatalf("Outcome = %v, want TerminateSession", res.Outcome)
	}
}

func TestFailStepFails(t *testing.T) {
	res := FailStep{Err: errBoom}.Invoke(nil)
	if res.Outcome != benchmark.Fail || res.Err != errBoom {
		t.Fatalf("got %+v, want Fail(errBoom)", res)
	}
}

func TestSetSharedCounterStepSet(t *testing.T) {
	schema := session.NewSchema()
	sess := newSession(schema)
	step := &SetSharedCounterStep{Key: "k", Op: OpSet, Value: 5}
	step.Invoke(sess)
	if got := sess.ThreadData.GetCounter("k").Get(); got != 5 {
		t.Fatalf("counter = %d, want 5", got)
	}
}

func TestSetSharedCounterStepAdd(t *testing.T) {
	schema := session.NewSchema()
	sess := newSession(schema)
	sess.ThreadData.ReserveCounter("k").Set(10)
	step := &SetSharedCounterStep{Key: "k", Op: OpAdd, Value: 3}
	res := step.Invoke(sess)
	if res.Outcome != benchmark.Advance {
		t.Fatalf("Outcome = %v, want Advance", res.Outcome)
	}
	if got := sess.ThreadData.GetCounter("k").Get(); got != 13 {
		t.Fatalf("counter = %d, want 13", got)
	}
}

func TestAwaitSharedCounterStepParksUntilSatisfied(t *testing.T) {
	schema := session.NewSchema()
	sess := newSession(schema)
	step := &AwaitSharedCounterStep{Key: "k", Predicate: GreaterOrEqualTo(5)}

	if res := step.Invoke(sess); res.Outcome != benchmark.Park {
		t.Fatalf("Outcome = %v, want Park before the counter is reserved", res.Outcome)
	}

	sess.ThreadData.ReserveCounter("k").Set(3)
	if res := step.Invoke(sess); res.Outcome != benchmark.Park {
		t.Fatalf("Outcome = %v, want Park while below threshold", res.Outcome)
	}

	sess.ThreadData.GetCounter("k").Set(5)
	if res := step.Invoke(sess); res.Outcome != benchmark.Advance {
		t.Fatalf("Outcome = %v, want Advance once threshold is met", res.Outcome)
	}
}

func TestAwaitVarStepParksUntilSet(t *testing.T) {
	schema := session.NewSchema()
	access := session.NewIntAccess(schema, "v")
	sess := newSession(schema)
	step := &AwaitVarStep{Var: access, Predicate: EqualTo(42)}

	if res := step.Invoke(sess); res.Outcome != benchmark.Park {
		t.Fatalf("Outcome = %v, want Park before the variable is set", res.Outcome)
	}

	access.SetInt(sess.Vars, 1)
	if res := step.Invoke(sess); res.Outcome != benchmark.Park {
		t.Fatalf("Outcome = %v, want Park while the predicate is false", res.Outcome)
	}

	access.SetInt(sess.Vars, 42)
	if res := step.Invoke(sess); res.Outcome != benchmark.Advance {
		t.Fatalf("Outcome = %v, want Advance once the predicate holds", res.Outcome)
	}
}

var errBoom = &boomError{}

type boomError struct{}

func (*boomError) Error() string { return "boom" }
