package benchmark

import (
	"fmt"

	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

// Benchmark is the whole immutable definition: a name and the DAG of
// phases that the scheduler drives (spec.md §2 — "Benchmark = DAG of
// Phases"). Everything reachable from Benchmark is built once, at load
// time, and never mutated while a run is in progress.
type Benchmark struct {
	Name   string
	Phases []*Phase

	// VarSchema is the single variable layout shared by every phase's
	// scenario, collected across the whole benchmark at build time
	// (spec.md §4.6). All phases in this benchmark run on the same
	// executor, so their sessions are drawn from one shared pool (§4.1)
	// and therefore need one shared variable layout.
	VarSchema *session.Schema
}

// ByName returns the phase with the given name, or nil if none exists.
func (b *Benchmark) ByName(name string) *Phase {
	for _, p := range b.Phases {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Validate checks every phase in isolation (Phase.Validate) and then the
// DAG as a whole: every startAfter/startAfterStrict/terminateAfterStrict
// reference must name a phase that actually exists, no phase may depend on
// itself transitively through startAfter/startAfterStrict edges, and phase
// names must be unique.
func (b *Benchmark) Validate() error {
	seen := make(map[string]bool, len(b.Phases))
	for _, p := range b.Phases {
		if seen[p.Name] {
			return &DefinitionError{Phase: p.Name, Message: "duplicate phase name"}
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return err
		}
	}

	for _, p := range b.Phases {
		for _, dep := range allDeps(p) {
			if !seen[dep] {
				return &DefinitionError{
					Phase:   p.Name,
					Message: fmt.Sprintf("depends on unknown phase %q", dep),
				}
			}
		}
	}

	return b.checkAcyclic()
}

func allDeps(p *Phase) []string {
	deps := make([]string, 0, len(p.StartAfter)+len(p.StartAfterStrict)+len(p.TerminateAfterStrict))
	deps = append(deps, p.StartAfter...)
	deps = append(deps, p.StartAfterStrict...)
	deps = append(deps, p.TerminateAfterStrict...)
	return deps
}

// checkAcyclic runs a straightforward white/gray/black DFS over the
// start-dependency edges (StartAfter and StartAfterStrict — the edges the
// scheduler actually waits on before starting a phase) and fails on the
// first back-edge found, since a start dependency cycle means no phase in
// the cycle could ever become eligible to start.
func (b *Benchmark) checkAcyclic() error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(b.Phases))

	var visit func(name string) error
	visit = func(name string) error {
		switch color[name] {
		case gray:
			return &DefinitionError{Phase: name, Message: "start-dependency cycle"}
		case black:
			return nil
		}
		color[name] = gray
		p := b.ByName(name)
		for _, dep := range p.StartAfter {
			if err := visit(dep); err != nil {
				return err
			}
		}
		for _, dep := range p.StartAfterStrict {
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[name] = black
		return nil
	}

	for _, p := range b.Phases {
		if err := visit(p.Name); err != nil {
			return err
		}
	}
	return nil
}
