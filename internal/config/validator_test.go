package config

import "testing"

func TestValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		if err := Validate([]byte(sampleYAML)); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		doc := `
phases:
  - name: p
    duration: 10s
    atOnce: {users: 1}
    scenario: {name: s, sequences: []}
`
		if err := Validate([]byte(doc)); err == nil {
			t.Error("Validate() error = nil, want error for missing name")
		}
	})

	t.Run("no phases", func(t *testing.T) {
		doc := `
name: empty
phases: []
`
		if err := Validate([]byte(doc)); err == nil {
			t.Error("Validate() error = nil, want error for empty phases")
		}
	})

	t.Run("phase missing scenario", func(t *testing.T) {
		doc := `
name: x
phases:
  - name: p
    duration: 10s
    atOnce: {users: 1}
`
		if err := Validate([]byte(doc)); err == nil {
			t.Error("Validate() error = nil, want error for missing scenario")
		}
	})
}

func TestBuildRejectsAmbiguousArrivalModel(t *testing.T) {
	doc, err := Parse([]byte(`
name: x
phases:
  - name: p
    duration: 10s
    atOnce: {users: 1}
    always: {users: 1}
    scenario: {name: s, sequences: []}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := Build(doc, nil); err == nil {
		t.Error("Build() error = nil, want error for two arrival models set")
	}
}

func TestBuildRejectsNoArrivalModel(t *testing.T) {
	doc, err := Parse([]byte(`
name: x
phases:
  - name: p
    duration: 10s
    scenario: {name: s, sequences: []}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := Build(doc, nil); err == nil {
		t.Error("Build() error = nil, want error for zero arrival models set")
	}
}
