package library

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// CounterOp names the arithmetic a SetSharedCounterStep performs, grounded
// on SetSharedCounterAction.java's set/add distinction.
type CounterOp int

const (
	OpSet CounterOp = iota
	OpAdd
)

// SetSharedCounterStep reserves (idempotently) a named ThreadData counter
// and applies Op with Value, then always advances — it is not a predicate
// step, matching SetSharedCounterAction.java which is an unconditional
// action rather than a blocking await.
type SetSharedCounterStep struct {
	Key   string
	Op    CounterOp
	Value int64
}

func (s *SetSharedCounterStep) Invoke(sess *session.Session) benchmark.Result {
	counter := sess.ThreadData.ReserveCounter(s.Key)
	switch s.Op {
	case OpAdd:
		counter.Add(s.Value)
	default:
		counter.Set(s.Value)
	}
	return benchmark.ResultAdvance()
}
