package benchmark

import "github.com/Praveenmail2him/Hyperfoil/internal/session"

// Sequence is a named, ordered list of Steps. A session may run several
// sequence instances concurrently (spec.md §4.2 — a scenario's initial
// sequences all start together), each tracked independently by the
// interpreter's program counter for that instance.
type Sequence struct {
	Name  string
	Steps []Step
}

// Scenario is the immutable, per-phase program every session of that phase
// runs: the sequences that start immediately, plus a library of named
// sequence templates that a running sequence may instantiate as a follow-up
// (spec.md's supplemented "sequence templates", grounded in the reference
// implementation's named-sequence scenario model).
type Scenario struct {
	Name string

	InitialSequences   []*Sequence
	TemplateSequences  map[string]*Sequence

	// VarSchema is the fixed variable layout derived once, at build time,
	// from every Access the scenario's steps bind (spec.md §4.6). A
	// fresh Scenario gets its own empty schema; config.Build
	// overwrites it with the schema shared across every phase in the
	// benchmark, since their sessions are drawn from one pool per
	// executor (spec.md §4.1) and must therefore share one variable
	// layout.
	VarSchema *session.Schema
}

// NewScenario creates an empty scenario with a fresh variable schema, ready
// for its builder to append sequences and bind Access values against
// VarSchema. Callers building a multi-phase benchmark should overwrite
// VarSchema with a schema shared across every phase's scenario before
// binding any Access against it.
func NewScenario(name string) *Scenario {
	return &Scenario{
		Name:              name,
		TemplateSequences: make(map[string]*Sequence),
		VarSchema:         session.NewSchema(),
	}
}

// AddInitialSequence appends seq to the set of sequences that start as soon
// as a session begins running this scenario.
func (s *Scenario) AddInitialSequence(seq *Sequence) {
	s.InitialSequences = append(s.InitialSequences, seq)
}

// AddTemplate registers seq under its own name as instantiable by a
// StartSequence follow-up action from any other running sequence.
func (s *Scenario) AddTemplate(seq *Sequence) {
	s.TemplateSequences[seq.Name] = seq
}

// Template looks up a named sequence template, returning ok=false if no
// template was registered under that name.
func (s *Scenario) Template(name string) (*Sequence, bool) {
	seq, ok := s.TemplateSequences[name]
	return seq, ok
}
