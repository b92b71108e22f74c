package config

import (
	"fmt"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/httpclient"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
	"github.com/Praveenmail2him/Hyperfoil/internal/step/library"
)

// Build converts a parsed Document into a runtime benchmark.Benchmark,
// wiring every step to a variable schema shared across every phase's
// scenario (spec.md §4.6 — "collecting every variable name referenced by
// any step"; every phase in this benchmark shares one executor and
// therefore one session pool, so their sessions share one variable
// layout too). pool is the httpclient.Pool every httpRequest step in the
// document submits through.
func Build(doc *Document, pool *httpclient.Pool) (*benchmark.Benchmark, error) {
	bench := &benchmark.Benchmark{Name: doc.Name, VarSchema: session.NewSchema()}

	for _, pc := range doc.Phases {
		scenario := benchmark.NewScenario(pc.Scenario.Name)
		scenario.VarSchema = bench.VarSchema
		for _, sc := range pc.Scenario.Sequences {
			seq, err := buildSequence(sc, scenario, pool)
			if err != nil {
				return nil, fmt.Errorf("phase %q: %w", pc.Name, err)
			}
			scenario.AddInitialSequence(seq)
		}
		for _, sc := range pc.Scenario.Templates {
			seq, err := buildSequence(sc, scenario, pool)
			if err != nil {
				return nil, fmt.Errorf("phase %q: %w", pc.Name, err)
			}
			scenario.AddTemplate(seq)
		}

		phaseDef, err := buildPhase(pc, scenario)
		if err != nil {
			return nil, err
		}
		bench.Phases = append(bench.Phases, phaseDef)
	}

	if err := bench.Validate(); err != nil {
		return nil, err
	}
	return bench, nil
}

func buildSequence(sc SequenceConfig, scenario *benchmark.Scenario, pool *httpclient.Pool) (*benchmark.Sequence, error) {
	seq := &benchmark.Sequence{Name: sc.Name}
	for i, stepCfg := range sc.Steps {
		st, err := buildStep(stepCfg, scenario, i, pool)
		if err != nil {
			return nil, fmt.Errorf("sequence %q step %d: %w", sc.Name, i, err)
		}
		seq.Steps = append(seq.Steps, st)
	}
	return seq, nil
}

func buildStep(sc StepConfig, scenario *benchmark.Scenario, index int, pool *httpclient.Pool) (benchmark.Step, error) {
	switch {
	case sc.HTTPRequest != nil:
		c := sc.HTTPRequest
		prefix := fmt.Sprintf("__httpRequest%d", index)
		return &library.HttpRequestStep{
			Method:     c.Method,
			URL:        c.URL,
			JSONPath:   c.JSONPath,
			Pool:       pool,
			Pending:    session.NewIntAccess(scenario.VarSchema, prefix+"_pending"),
			StatusVar:  session.NewIntAccess(scenario.VarSchema, namedOr(c.StatusVar, prefix+"_status")),
			BodyVar:    session.NewAccess(scenario.VarSchema, namedOr(c.BodyVar, prefix+"_body")),
			ExtractVar: session.NewAccess(scenario.VarSchema, namedOr(c.ExtractVar, prefix+"_extract")),
		}, nil

	case sc.ScheduleDelay != nil:
		prefix := fmt.Sprintf("__scheduleDelay%d", index)
		return &library.ScheduleDelayStep{
			Delay: sc.ScheduleDelay.Delay.Duration,
			Armed: session.NewIntAccess(scenario.VarSchema, prefix+"_armed"),
			Fired: session.NewIntAccess(scenario.VarSchema, prefix+"_fired"),
		}, nil

	case sc.AwaitSharedCounter != nil:
		c := sc.AwaitSharedCounter
		pred, err := intPredicate(c.Comparison, c.Target)
		if err != nil {
			return nil, err
		}
		return &library.AwaitSharedCounterStep{Key: c.Key, Predicate: pred}, nil

	case sc.SetSharedCounter != nil:
		c := sc.SetSharedCounter
		op := library.OpSet
		if c.Op == "add" {
			op = library.OpAdd
		}
		return &library.SetSharedCounterStep{Key: c.Key, Op: op, Value: c.Value}, nil

	case sc.Noop != nil:
		return library.NoopStep{}, nil

	default:
		return nil, fmt.Errorf("step has no recognized kind")
	}
}

func intPredicate(comparison string, target int64) (library.IntPredicate, error) {
	switch comparison {
	case "equalTo":
		return library.EqualTo(target), nil
	case "greaterThan":
		return library.GreaterThan(target), nil
	case "lessThan":
		return library.LessThan(target), nil
	case "greaterOrEqualTo":
		return library.GreaterOrEqualTo(target), nil
	default:
		return nil, fmt.Errorf("unknown comparison %q", comparison)
	}
}

func namedOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func buildPhase(pc PhaseConfig, scenario *benchmark.Scenario) (*benchmark.Phase, error) {
	def := &benchmark.Phase{
		Name:                 pc.Name,
		Scenario:             scenario,
		StartAfter:           pc.StartAfter,
		StartAfterStrict:     pc.StartAfterStrict,
		TerminateAfterStrict: pc.TerminateAfterStrict,
		Duration:             pc.Duration.Duration,
	}
	if pc.StartTime != nil {
		d := pc.StartTime.Duration
		def.StartTime = &d
	}
	if pc.MaxDuration != nil {
		d := pc.MaxDuration.Duration
		def.MaxDuration = &d
	}

	set := 0
	if pc.AtOnce != nil {
		set++
		def.Kind = benchmark.AtOnce
		def.Users = pc.AtOnce.Users
	}
	if pc.Always != nil {
		set++
		def.Kind = benchmark.Always
		def.Users = pc.Always.Users
	}
	if pc.ConstantPerSec != nil {
		set++
		def.Kind = benchmark.ConstantPerSec
		def.UsersPerSec = pc.ConstantPerSec.UsersPerSec
		def.MaxSessionsEstimate = pc.ConstantPerSec.MaxSessionsEstimate
	}
	if pc.RampPerSec != nil {
		set++
		def.Kind = benchmark.RampPerSec
		def.InitialUsersPerSec = pc.RampPerSec.InitialUsersPerSec
		def.TargetUsersPerSec = pc.RampPerSec.TargetUsersPerSec
		def.MaxSessionsEstimate = pc.RampPerSec.MaxSessionsEstimate
	}
	if pc.Sequentially != nil {
		set++
		def.Kind = benchmark.Sequentially
		def.Repeats = pc.Sequentially.Repeats
	}
	if set != 1 {
		return nil, fmt.Errorf("phase %q must set exactly one arrival model, found %d", pc.Name, set)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
