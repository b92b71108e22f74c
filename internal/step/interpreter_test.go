package step

import (
	"errors"
	"testing"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

type advanceStep struct{ ticks int }

func (s *advanceStep) Invoke(*session.Session) benchmark.Result {
	s.ticks++
	return benchmark.ResultAdvance()
}

type parkNTimesStep struct{ remaining int }

func (s *parkNTimesStep) Invoke(*session.Session) benchmark.Result {
	if s.remaining > 0 {
		s.remaining--
		return benchmark.ResultPark()
	}
	return benchmark.ResultAdvance()
}

type failStep struct{ err error }

func (s *failStep) Invoke(*session.Session) benchmark.Result {
	return benchmark.ResultFail(s.err)
}

type terminateStep struct{}

func (terminateStep) Invoke(*session.Session) benchmark.Result {
	return benchmark.ResultTerminate()
}

func newSession() *session.Session {
	schema := session.NewSchema()
	return session.NewSession(1, session.NewThreadData(), schema)
}

func TestTickRunsSequenceToCompletion(t *testing.T) {
	sess := newSession()
	a := &advanceStep{}
	scenario := benchmark.NewScenario("s")
	scenario.AddInitialSequence(&benchmark.Sequence{Name: "main", Steps: []benchmark.Step{a, a}})
	Start(sess, scenario)

	result, err := Tick(sess)
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if result != Finished {
		t.Fatalf("Tick() = %v, want Finished", result)
	}
	if a.ticks != 2 {
		t.Fatalf("steps invoked %d times, want 2", a.ticks)
	}
}

func TestTickParksWithoutAdvancingPC(t *testing.T) {
	sess := newSession()
	park := &parkNTimesStep{remaining: 2}
	scenario := benchmark.NewScenario("s")
	scenario.AddInitialSequence(&benchmark.Sequence{Name: "main", Steps: []benchmark.Step{park}})
	Start(sess, scenario)

	result, _ := Tick(sess)
	if result != Continue {
		t.Fatalf("Tick() = %v, want Continue while parked", result)
	}
	result, _ = Tick(sess)
	if result != Continue {
		t.Fatalf("Tick() = %v, want Continue on second park", result)
	}
	result, _ = Tick(sess)
	if result != Finished {
		t.Fatalf("Tick() = %v, want Finished once the park count is exhausted", result)
	}
}

func TestTickReturnsFailedWithError(t *testing.T) {
	sess := newSession()
	want := errors.New("boom")
	scenario := benchmark.NewScenario("s")
	scenario.AddInitialSequence(&benchmark.Sequence{Name: "main", Steps: []benchmark.Step{&failStep{err: want}}})
	Start(sess, scenario)

	result, err := Tick(sess)
	if result != Failed {
		t.Fatalf("Tick() = %v, want Failed", result)
	}
	if err != want {
		t.Fatalf("Tick() err = %v, want %v", err, want)
	}
}

func TestTickReturnsTerminated(t *testing.T) {
	sess := newSession()
	scenario := benchmark.NewScenario("s")
	scenario.AddInitialSequence(&benchmark.Sequence{Name: "main", Steps: []benchmark.Step{terminateStep{}}})
	Start(sess, scenario)

	result, _ := Tick(sess)
	if result != Terminated {
		t.Fatalf("Tick() = %v, want Terminated", result)
	}
}

func TestTickRunsMultipleInitialSequencesConcurrently(t *testing.T) {
	sess := newSession()
	a, b := &advanceStep{}, &advanceStep{}
	scenario := benchmark.NewScenario("s")
	scenario.AddInitialSequence(&benchmark.Sequence{Name: "a", Steps: []benchmark.Step{a}})
	scenario.AddInitialSequence(&benchmark.Sequence{Name: "b", Steps: []benchmark.Step{b}})
	Start(sess, scenario)

	result, _ := Tick(sess)
	if result != Finished {
		t.Fatalf("Tick() = %v, want Finished", result)
	}
	if a.ticks != 1 || b.ticks != 1 {
		t.Fatalf("both initial sequences should have run once, got a=%d b=%d", a.ticks, b.ticks)
	}
}

func TestStartSequenceForksTemplate(t *testing.T) {
	sess := newSession()
	forked := &advanceStep{}
	scenario := benchmark.NewScenario("s")
	scenario.AddTemplate(&benchmark.Sequence{Name: "follow-up", Steps: []benchmark.Step{forked}})
	Start(sess, scenario)

	if ok := StartSequence(sess, "follow-up"); !ok {
		t.Fatal("StartSequence(follow-up) = false, want true")
	}
	if ok := StartSequence(sess, "missing"); ok {
		t.Fatal("StartSequence(missing) = true, want false")
	}

	result, _ := Tick(sess)
	if result != Finished {
		t.Fatalf("Tick() = %v, want Finished", result)
	}
	if forked.ticks != 1 {
		t.Fatalf("forked sequence ran %d times, want 1", forked.ticks)
	}
}
