package benchmark

import "testing"

func simplePhase(name string, startAfter ...string) *Phase {
	return &Phase{
		Name:       name,
		Scenario:   NewScenario(name),
		Kind:       AtOnce,
		Users:      1,
		StartAfter: startAfter,
	}
}

func TestBenchmarkValidateOK(t *testing.T) {
	b := &Benchmark{Phases: []*Phase{
		simplePhase("warmup"),
		simplePhase("steady", "warmup"),
	}}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestBenchmarkValidateDuplicateName(t *testing.T) {
	b := &Benchmark{Phases: []*Phase{
		simplePhase("warmup"),
		simplePhase("warmup"),
	}}
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() error = nil, want duplicate-name error")
	}
}

func TestBenchmarkValidateDanglingReference(t *testing.T) {
	b := &Benchmark{Phases: []*Phase{
		simplePhase("steady", "nonexistent"),
	}}
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() error = nil, want dangling-reference error")
	}
}

func TestBenchmarkValidateCycle(t *testing.T) {
	b := &Benchmark{Phases: []*Phase{
		simplePhase("a", "b"),
		simplePhase("b", "a"),
	}}
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() error = nil, want start-dependency cycle error")
	}
}

func TestByName(t *testing.T) {
	p := simplePhase("warmup")
	b := &Benchmark{Phases: []*Phase{p}}
	if got := b.ByName("warmup"); got != p {
		t.Errorf("ByName(warmup) = %v, want %v", got, p)
	}
	if got := b.ByName("missing"); got != nil {
		t.Errorf("ByName(missing) = %v, want nil", got)
	}
}
