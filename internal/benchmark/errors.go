package benchmark

import "fmt"

// DefinitionError reports a structural problem detected while building a
// Benchmark from its parsed configuration: an unknown arrival kind, an
// invalid arrival field, a duplicate phase name, a dangling
// startAfter/startAfterStrict/terminateAfterStrict reference, or a
// start-dependency cycle. Session variables are declared as steps bind
// them, so no error is raised for an undeclared variable. It is always
// fatal at setup time (spec.md §7).
type DefinitionError struct {
	Phase   string
	Message string
}

func (e *DefinitionError) Error() string {
	if e.Phase == "" {
		return fmt.Sprintf("benchmark definition error: %s", e.Message)
	}
	return fmt.Sprintf("benchmark definition error in phase %q: %s", e.Phase, e.Message)
}

// AssertionError signals an invariant violation inside the core — the
// scheduler, arrival loop, or step interpreter observed a state that should
// be impossible. The whole benchmark run aborts when one of these is raised.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("internal assertion failure: %s", e.Message)
}
