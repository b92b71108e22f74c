package library

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// IntPredicate compares an observed int64 against a threshold. The
// comparator names mirror the reference implementation's AwaitIntStep,
// which supports equalTo/greaterThan/lessThan/greaterOrEqualTo variants
// over a shared counter or session variable.
type IntPredicate func(observed int64) bool

func EqualTo(target int64) IntPredicate         { return func(v int64) bool { return v == target } }
func GreaterThan(target int64) IntPredicate     { return func(v int64) bool { return v > target } }
func LessThan(target int64) IntPredicate        { return func(v int64) bool { return v < target } }
func GreaterOrEqualTo(target int64) IntPredicate { return func(v int64) bool { return v >= target } }

// AwaitSharedCounterStep parks until a named ThreadData counter satisfies
// Predicate, then advances. Grounded on AwaitIntStep.java, which parks a
// sequence until an observed integer (there, a session variable fed by a
// shared counter) satisfies a configured comparison.
type AwaitSharedCounterStep struct {
	Key       string
	Predicate IntPredicate
}

func (s *AwaitSharedCounterStep) Invoke(sess *session.Session) benchmark.Result {
	counter := sess.ThreadData.GetCounter(s.Key)
	if counter == nil {
		return benchmark.ResultPark()
	}
	if s.Predicate(counter.Get()) {
		return benchmark.ResultAdvance()
	}
	return benchmark.ResultPark()
}

// AwaitVarStep parks until an int session variable satisfies Predicate.
type AwaitVarStep struct {
	Var       session.Access
	Predicate IntPredicate
}

func (s *AwaitVarStep) Invoke(sess *session.Session) benchmark.Result {
	if !s.Var.IsSet(sess.Vars) {
		return benchmark.ResultPark()
	}
	if s.Predicate(s.Var.GetInt(sess.Vars)) {
		return benchmark.ResultAdvance()
	}
	return benchmark.ResultPark()
}
