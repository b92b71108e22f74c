package session

// PhaseNotifier is the narrow view of a phase instance that a Session needs:
// enough to report completion, forced termination, or a step failure,
// without the session package importing the phase package (which in turn
// needs to talk about sessions). internal/phase.Instance implements this
// interface.
type PhaseNotifier interface {
	// NotifyFinished reports that this session's scenario ran to normal
	// completion (every sequence instance reached its end).
	NotifyFinished(sess *Session)
	// NotifyTerminated reports that this session was dropped immediately
	// (a step returned the terminateSession outcome).
	NotifyTerminated(sess *Session)
	// Fail reports a step failure raised via the step interpreter's fail
	// outcome; the phase records it and moves to TERMINATING.
	Fail(sess *Session, err error)
	// Resume re-ticks a parked session. A step that parked on an external
	// event (an HTTP response, a scheduled delay) calls this from that
	// event's callback once it has flipped whatever variable the step is
	// watching, so the interpreter runs again instead of staying parked
	// forever.
	Resume(sess *Session)
}

// Clock is the narrow view of the owning executor's timer service a Session
// needs to schedule follow-up actions and to know "now" without importing
// the loop package.
type Clock interface {
	// NowNanos returns the executor's current time, unix nanoseconds.
	NowNanos() int64
	// Schedule runs fn once the executor's clock reaches at (unix
	// nanoseconds), on the executor's own goroutine.
	Schedule(at int64, fn func())
}

// Session is a single virtual user's execution context: identity, its
// variable table, and references back to its owning phase instance and to
// the per-executor ThreadData it shares with every other session on that
// executor (spec.md §3).
//
// A Session is allocated once by the pool and reused across its whole
// lifetime: allocated -> acquired -> run (until scenario completion) ->
// reset and released (spec.md §4.1). The reset happens on release, not on
// acquire.
type Session struct {
	ID int

	ThreadData *ThreadData
	Vars       *Variables

	Phase PhaseNotifier
	Clock Clock

	// Runtime is opaque storage for the step interpreter's per-session
	// state (the running sequence instances and their program counters).
	// It lives here, rather than as a typed field, so that the session
	// package does not need to import the step package — the step
	// package is the only reader/writer of this field.
	Runtime interface{}
}

// NewSession allocates a session bound to threadData with a variable table
// sized to schema. Sessions are constructed once, up front, by pool.New —
// never on the per-VU hot path.
func NewSession(id int, threadData *ThreadData, schema *Schema) *Session {
	return &Session{
		ID:         id,
		ThreadData: threadData,
		Vars:       NewVariables(schema),
	}
}

// Reset clears the session's variable table and interpreter runtime state,
// and detaches it from its previous phase. The pool calls this on release,
// and the closed-loop models call it themselves immediately before
// re-driving the very same session object.
func (s *Session) Reset() {
	s.Vars.Reset()
	s.Runtime = nil
	s.Phase = nil
	s.Clock = nil
}

// Bind attaches the session to the phase instance and clock that will drive
// it for this run. Called by phase.Instance.StartSession each time it
// starts the session; pool.Acquire does not bind.
func (s *Session) Bind(phase PhaseNotifier, clock Clock) {
	s.Phase = phase
	s.Clock = clock
}
