package benchmark

import "time"

// ArrivalKind discriminates the five arrival-process variants a Phase can
// carry. Phase is a tagged union over this enum rather than five separate
// Go types: the scheduler and phase-instance factory dispatch on Kind with
// a single switch instead of a type-keyed constructor table (spec.md §9 —
// "replace [the original's class-keyed constructor map] with a tagged
// union of phase definitions and a single dispatch function").
type ArrivalKind int

const (
	// AtOnce bursts Users sessions at phase start, then finishes.
	AtOnce ArrivalKind = iota
	// Always keeps exactly Users sessions active for Duration, replacing
	// completions immediately.
	Always
	// ConstantPerSec starts sessions at a constant UsersPerSec rate
	// (open-loop Poisson approximation).
	ConstantPerSec
	// RampPerSec linearly ramps the arrival rate from InitialUsersPerSec to
	// TargetUsersPerSec over Duration.
	RampPerSec
	// Sequentially runs one session at a time, Repeats times.
	Sequentially
)

func (k ArrivalKind) String() string {
	switch k {
	case AtOnce:
		return "atOnce"
	case Always:
		return "always"
	case ConstantPerSec:
		return "constantPerSec"
	case RampPerSec:
		return "rampPerSec"
	case Sequentially:
		return "sequentially"
	default:
		return "unknown"
	}
}

// Phase is the immutable definition of one phase in a benchmark's
// simulation: name, dependency edges, duration/safety-valve windows, the
// scenario its sessions drive, and exactly one arrival specification
// (selected by Kind; only the fields relevant to that Kind are populated).
type Phase struct {
	Name string

	// Scenario this phase's sessions run.
	Scenario *Scenario

	// StartTime is an absolute offset from benchmark start. Nil means the
	// phase has no fixed start time and becomes ready purely based on its
	// dependency edges.
	StartTime *time.Duration

	// StartAfter names phases that must be at least FINISHED before this
	// phase may start.
	StartAfter []string

	// StartAfterStrict names phases that must be TERMINATED before this
	// phase may start.
	StartAfterStrict []string

	// TerminateAfterStrict names phases that must all be TERMINATED before
	// this (already FINISHED) phase is allowed to terminate.
	TerminateAfterStrict []string

	// Duration is the RUNNING window. For AtOnce and Sequentially it bounds
	// nothing structurally (they finish when their arrival process
	// completes) but may still be set as a safety valve alongside
	// MaxDuration.
	Duration time.Duration

	// MaxDuration, if set, forces a terminate() regardless of Duration or
	// natural completion — the hard stop described in spec.md §4.4.
	MaxDuration *time.Duration

	Kind ArrivalKind

	// Users is the population size for AtOnce and Always.
	Users int

	// UsersPerSec is the constant rate for ConstantPerSec.
	UsersPerSec float64

	// InitialUsersPerSec and TargetUsersPerSec bound the linear ramp for
	// RampPerSec.
	InitialUsersPerSec float64
	TargetUsersPerSec  float64

	// MaxSessionsEstimate sizes the session-pool reservation for the two
	// open-loop models (ConstantPerSec, RampPerSec).
	MaxSessionsEstimate int

	// Repeats is the iteration count for Sequentially.
	Repeats int
}

// Validate checks the phase definition is internally consistent. It does
// not check cross-phase references (dangling startAfter names) — that is
// done once the whole Simulation is assembled, in Benchmark.Validate.
func (p *Phase) Validate() error {
	if p.Name == "" {
		return &DefinitionError{Message: "phase name must not be empty"}
	}
	if p.Scenario == nil {
		return &DefinitionError{Phase: p.Name, Message: "phase has no scenario"}
	}
	switch p.Kind {
	case AtOnce, Always:
		if p.Users < 0 {
			return &DefinitionError{Phase: p.Name, Message: "users must be >= 0"}
		}
	case ConstantPerSec:
		if p.UsersPerSec <= 0 {
			return &DefinitionError{Phase: p.Name, Message: "usersPerSec must be > 0"}
		}
		if p.MaxSessionsEstimate <= 0 {
			return &DefinitionError{Phase: p.Name, Message: "maxSessionsEstimate must be > 0"}
		}
	case RampPerSec:
		if p.InitialUsersPerSec < 0 || p.TargetUsersPerSec < 0 {
			return &DefinitionError{Phase: p.Name, Message: "ramp rates must be >= 0"}
		}
		if p.Duration <= 0 {
			return &DefinitionError{Phase: p.Name, Message: "ramp phases require a duration"}
		}
		if p.MaxSessionsEstimate <= 0 {
			return &DefinitionError{Phase: p.Name, Message: "maxSessionsEstimate must be > 0"}
		}
	case Sequentially:
		if p.Repeats <= 0 {
			return &DefinitionError{Phase: p.Name, Message: "repeats must be > 0"}
		}
	default:
		return &DefinitionError{Phase: p.Name, Message: "unknown arrival kind"}
	}
	return nil
}
