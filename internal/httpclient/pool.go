// Package httpclient is the core's one external collaborator for request
// transport: a thin, test-friendly stand-in for the real connection-pooled
// HTTP stack the full system would use (spec.md §1 — "HTTP client
// transport... [is] out of scope, treated as an external collaborator with
// a narrow contract"). It exposes exactly the two operations steps need —
// submit and schedule — and nothing about connection pooling, TLS, or
// wire-level request serialization, which stays opaque to the core.
//
// Grounded on http/client.go's *http.Client wrapper, adapted so its
// completions post back onto the owning executor instead of returning
// synchronously to the caller's goroutine.
package httpclient

import (
	"context"
	"net/http"
	"time"
)

// Executor is the narrow view of the single-threaded executor a Pool needs:
// enough to post an HTTP completion back onto the session's own thread and
// to schedule a timer-driven callback (spec.md §6 — "submit... (never
// blocks; callback posts to the session's executor) and schedule(runnable,
// delay)").
type Executor interface {
	Post(fn func())
	Schedule(at int64, fn func())
	NowNanos() int64
}

// Pool wraps a real net/http.Client and adapts its blocking Do call into
// the core's non-blocking submit/schedule contract: submit spawns the
// request off the executor thread and posts its result back; schedule
// forwards straight to the executor's timer wheel.
type Pool struct {
	client *http.Client
	exec   Executor
}

// Option configures a Pool at construction.
type Option func(*Pool)

// WithTimeout sets the underlying client's per-request timeout. The
// timeout is 30s when this option is not supplied.
func WithTimeout(d time.Duration) Option {
	return func(p *Pool) { p.client.Timeout = d }
}

// WithHTTPClient swaps in a preconfigured *http.Client (custom transport,
// TLS settings, …).
func WithHTTPClient(c *http.Client) Option {
	return func(p *Pool) { p.client = c }
}

// NewPool creates a Pool whose completions are posted back onto exec.
func NewPool(exec Executor, opts ...Option) *Pool {
	p := &Pool{
		client: &http.Client{Timeout: 30 * time.Second},
		exec:   exec,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Submit issues req off the executor thread and, once it completes (or
// fails), posts onComplete back onto the executor via a single callback —
// the MPSC handoff spec.md §9 calls for ("do not assume transport callbacks
// run on the executor thread; use a lock-free MPSC into the executor's task
// queue"). Submit itself never blocks the caller.
func (p *Pool) Submit(req *http.Request, onComplete func(resp *http.Response, err error)) {
	go func() {
		resp, err := p.client.Do(req)
		p.exec.Post(func() {
			onComplete(resp, err)
		})
	}()
}

// Schedule runs fn once delay has elapsed, via the executor's own timer
// wheel — the pool does not maintain its own clock.
func (p *Pool) Schedule(delay time.Duration, fn func()) {
	at := p.exec.NowNanos() + delay.Nanoseconds()
	p.exec.Schedule(at, fn)
}

// NewGetRequest is a small convenience that builds a context-bound,
// bodiless request with the given method (GET, POST, …) for url.
func NewGetRequest(ctx context.Context, method, url string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, url, nil)
}
