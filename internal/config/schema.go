// Package config turns a YAML benchmark definition into the in-memory
// internal/benchmark.Benchmark the scheduler runs. Parsing and structural
// validation are the core's one external collaborator for configuration
// (spec.md §1 — "YAML/JSON parsing into the in-memory benchmark
// definition" is out of scope for the core itself, but this package is
// where that collaborator lives).
//
// Grounded on config/loader.go's struct-with-tags-plus-Load(path) shape,
// adapted from its REST-suite domain to phases/scenarios/sequences/steps.
package config

import "time"

// Document is the root of a benchmark definition YAML file.
type Document struct {
	Name   string        `yaml:"name"`
	Phases []PhaseConfig `yaml:"phases"`
}

// PhaseConfig is one phase entry in the YAML document. Exactly one of the
// arrival-model blocks (AtOnce, Always, ConstantPerSec, RampPerSec,
// Sequentially) should be set; Build (in build.go) rejects a phase with
// zero or more than one populated.
type PhaseConfig struct {
	Name                  string         `yaml:"name"`
	Scenario              ScenarioConfig `yaml:"scenario"`
	StartTime             *Duration      `yaml:"startTime,omitempty"`
	StartAfter            []string       `yaml:"startAfter,omitempty"`
	StartAfterStrict      []string       `yaml:"startAfterStrict,omitempty"`
	TerminateAfterStrict  []string       `yaml:"terminateAfterStrict,omitempty"`
	Duration              Duration       `yaml:"duration"`
	MaxDuration           *Duration      `yaml:"maxDuration,omitempty"`

	AtOnce         *AtOnceConfig         `yaml:"atOnce,omitempty"`
	Always         *AlwaysConfig         `yaml:"always,omitempty"`
	ConstantPerSec *ConstantPerSecConfig `yaml:"constantPerSec,omitempty"`
	RampPerSec     *RampPerSecConfig     `yaml:"rampPerSec,omitempty"`
	Sequentially   *SequentiallyConfig   `yaml:"sequentially,omitempty"`
}

type AtOnceConfig struct {
	Users int `yaml:"users"`
}

type AlwaysConfig struct {
	Users int `yaml:"users"`
}

type ConstantPerSecConfig struct {
	UsersPerSec         float64 `yaml:"usersPerSec"`
	MaxSessionsEstimate int     `yaml:"maxSessionsEstimate"`
}

type RampPerSecConfig struct {
	InitialUsersPerSec  float64 `yaml:"initialUsersPerSec"`
	TargetUsersPerSec   float64 `yaml:"targetUsersPerSec"`
	MaxSessionsEstimate int     `yaml:"maxSessionsEstimate"`
}

type SequentiallyConfig struct {
	Repeats int `yaml:"repeats"`
}

// ScenarioConfig is the YAML shape of a scenario: sequences that start
// immediately, plus named templates instantiable at runtime.
type ScenarioConfig struct {
	Name      string           `yaml:"name"`
	Sequences []SequenceConfig `yaml:"sequences"`
	Templates []SequenceConfig `yaml:"templates,omitempty"`
}

// SequenceConfig is a named, ordered list of steps.
type SequenceConfig struct {
	Name  string       `yaml:"name"`
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig is a tagged-union YAML step entry: exactly one of its fields
// should be set, matching the kind of step it describes. Build dispatches
// on which field is non-nil to construct the concrete internal/step/library
// type.
type StepConfig struct {
	HTTPRequest    *HTTPRequestConfig    `yaml:"httpRequest,omitempty"`
	ScheduleDelay  *ScheduleDelayConfig  `yaml:"scheduleDelay,omitempty"`
	AwaitSharedCounter *AwaitSharedCounterConfig `yaml:"awaitSharedCounter,omitempty"`
	SetSharedCounter   *SetSharedCounterConfig   `yaml:"setSharedCounter,omitempty"`
	Noop           *struct{}            `yaml:"noop,omitempty"`
}

type HTTPRequestConfig struct {
	Method     string `yaml:"method"`
	URL        string `yaml:"url"`
	JSONPath   string `yaml:"jsonPath,omitempty"`
	ExtractVar string `yaml:"extractVar,omitempty"`
	StatusVar  string `yaml:"statusVar,omitempty"`
	BodyVar    string `yaml:"bodyVar,omitempty"`
}

type ScheduleDelayConfig struct {
	Delay Duration `yaml:"delay"`
}

type AwaitSharedCounterConfig struct {
	Key        string `yaml:"key"`
	Comparison string `yaml:"comparison"` // equalTo|greaterThan|lessThan|greaterOrEqualTo
	Target     int64  `yaml:"target"`
}

type SetSharedCounterConfig struct {
	Key   string `yaml:"key"`
	Op    string `yaml:"op"` // set|add
	Value int64  `yaml:"value"`
}

// Duration wraps time.Duration so it can parse YAML's human-readable
// strings ("30s", "5m") via UnmarshalYAML in loader.go, instead of forcing
// the definition file to spell out nanoseconds.
type Duration struct {
	time.Duration
}
