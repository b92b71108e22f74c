// Package loop implements the single-threaded cooperative executor every
// phase instance on one thread runs against (spec.md §5): a task queue fed
// by other goroutines (HTTP completions, in particular) and a timer wheel
// for scheduled actions, both drained from one goroutine so that session
// and ThreadData state never needs synchronization.
package loop

import (
	"container/heap"
	"sync"
	"time"
)

// timerEntry is one armed callback in the executor's timer wheel.
type timerEntry struct {
	at    int64
	run   func()
	index int
}

type timerHeap []*timerEntry

func (h timerHeap) Len() int           { return len(h) }
func (h timerHeap) Less(i, j int) bool { return h[i].at < h[j].at }
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x interface{}) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Executor is a single goroutine that drains a task queue and a timer
// wheel. Everything it runs executes serially, in the order tasks become
// runnable — the property internal/session and internal/phase rely on to
// stay unsynchronized.
//
// The task queue is a multi-producer, single-consumer queue guarded by a
// mutex: Post is safe to call from any goroutine (an HTTP response
// callback, in particular) and only holds the lock long enough to append.
type Executor struct {
	mu     sync.Mutex
	tasks  []func()
	wake   chan struct{}
	timers timerHeap
	closed bool
}

// New creates an idle Executor ready to Run.
func New() *Executor {
	return &Executor{
		wake: make(chan struct{}, 1),
	}
}

// Post enqueues fn to run on the executor goroutine. Safe to call
// concurrently from any number of goroutines.
func (e *Executor) Post(fn func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.tasks = append(e.tasks, fn)
	e.mu.Unlock()
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Schedule arms fn to run once the executor's clock reaches at (unix
// nanoseconds). Safe to call from any goroutine, including the executor's
// own.
func (e *Executor) Schedule(at int64, fn func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	heap.Push(&e.timers, &timerEntry{at: at, run: fn})
	e.mu.Unlock()
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// NowNanos returns the executor's current time as real wall-clock unix
// nanoseconds. The clock is always time.Now; the Executor offers no way to
// substitute another one.
func (e *Executor) NowNanos() int64 {
	return time.Now().UnixNano()
}

// Run drains tasks and due timers until stop is closed. It is the
// executor's only goroutine: call it once, from the goroutine you want to
// own this executor's sessions.
func (e *Executor) Run(stop <-chan struct{}) {
	for {
		e.drainTasks()
		e.fireDueTimers()

		wait := e.nextTimerWait()
		select {
		case <-stop:
			e.mu.Lock()
			e.closed = true
			e.mu.Unlock()
			return
		case <-e.wake:
		case <-time.After(wait):
		}
	}
}

func (e *Executor) drainTasks() {
	for {
		e.mu.Lock()
		if len(e.tasks) == 0 {
			e.mu.Unlock()
			return
		}
		task := e.tasks[0]
		e.tasks = e.tasks[1:]
		e.mu.Unlock()
		task()
	}
}

func (e *Executor) fireDueTimers() {
	now := e.NowNanos()
	for {
		e.mu.Lock()
		if len(e.timers) == 0 || e.timers[0].at > now {
			e.mu.Unlock()
			return
		}
		entry := heap.Pop(&e.timers).(*timerEntry)
		e.mu.Unlock()
		entry.run()
	}
}

func (e *Executor) nextTimerWait() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.timers) == 0 {
		return 50 * time.Millisecond
	}
	d := time.Duration(e.timers[0].at - e.NowNanos())
	if d < time.Millisecond {
		return time.Millisecond
	}
	if d > 50*time.Millisecond {
		return 50 * time.Millisecond
	}
	return d
}
