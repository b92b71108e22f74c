// Package pool implements Component C: a per-executor bounded pool of
// pre-constructed sessions, sized up front so the hot path never allocates
// (spec.md §4.1).
package pool

import "github.com/Praveenmail2him/Hyperfoil/internal/session"

// Pool is a bounded, pre-allocated free-list of sessions sharing one
// ThreadData and one variable Schema. Capacity is fixed at construction
// time by summing, over the phases co-located on one executor, `users`
// (closed models) or `maxSessionsEstimate` (open models) — spec.md §4.1.
type Pool struct {
	all  []*session.Session
	free []*session.Session
}

// New pre-allocates n sessions sharing threadData and schema. This is the
// "reserve(n)" operation: it runs once, at benchmark build time, never on
// the per-VU path.
func New(n int, threadData *session.ThreadData, schema *session.Schema) *Pool {
	p := &Pool{
		all:  make([]*session.Session, 0, n),
		free: make([]*session.Session, 0, n),
	}
	for i := 0; i < n; i++ {
		s := session.NewSession(i, threadData, schema)
		p.all = append(p.all, s)
		p.free = append(p.free, s)
	}
	return p
}

// Acquire returns a free session, or nil if the pool is exhausted. A nil
// return from an open-loop arrival process is a saturation event: the
// caller must report it and drop the arriving virtual user rather than
// queue it (spec.md §4.1). Closed-loop models never call Acquire once
// they've acquired their fixed population, so they cannot saturate by
// construction.
func (p *Pool) Acquire() *session.Session {
	n := len(p.free)
	if n == 0 {
		return nil
	}
	s := p.free[n-1]
	p.free = p.free[:n-1]
	return s
}

// Release resets sess's variable table and interpreter state (see
// Session.Reset) and returns it to the free list. A session keeps no
// scheduled-action queue of its own: timers a step arms are held by the
// executor, and Release does not cancel them. Open-loop models call this from
// notifyFinished; closed-loop models (Always) do not call it — they reset
// and re-drive the same session object directly (spec.md §4.1 release
// discipline).
func (p *Pool) Release(sess *session.Session) {
	sess.Reset()
	p.free = append(p.free, sess)
}

// Cap returns the pool's total capacity.
func (p *Pool) Cap() int { return len(p.all) }

// Available returns the number of currently-free sessions.
func (p *Pool) Available() int { return len(p.free) }
