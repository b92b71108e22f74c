package session

import "testing"

func TestSchemaDeclareIsIdempotent(t *testing.T) {
	s := NewSchema()
	idx1 := s.Declare("count", TypeInt)
	idx2 := s.Declare("count", TypeInt)
	if idx1 != idx2 {
		t.Fatalf("Declare(count) twice returned different indices: %d, %d", idx1, idx2)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) ok = true, want false")
	}
}

func TestVariablesIntRoundTrip(t *testing.T) {
	schema := NewSchema()
	idx := schema.Declare("count", TypeInt)
	v := NewVariables(schema)

	if v.IsSet(idx) {
		t.Fatal("freshly allocated variable should not be set")
	}
	v.SetInt(idx, 42)
	if !v.IsSet(idx) {
		t.Fatal("SetInt should mark the slot set")
	}
	if got := v.GetInt(idx); got != 42 {
		t.Errorf("GetInt() = %d, want 42", got)
	}

	v.Unset(idx)
	if v.IsSet(idx) {
		t.Fatal("Unset should clear the slot")
	}
	if got := v.GetInt(idx); got != 0 {
		t.Errorf("GetInt() after Unset = %d, want 0", got)
	}
}

func TestVariablesObjectRoundTrip(t *testing.T) {
	schema := NewSchema()
	idx := schema.Declare("body", TypeObject)
	v := NewVariables(schema)

	v.Set(idx, "hello")
	if got := v.Get(idx); got != "hello" {
		t.Errorf("Get() = %v, want hello", got)
	}
}

func TestVariablesReset(t *testing.T) {
	schema := NewSchema()
	idx := schema.Declare("count", TypeInt)
	v := NewVariables(schema)
	v.SetInt(idx, 7)

	v.Reset()
	if v.IsSet(idx) {
		t.Fatal("Reset should clear every slot")
	}
	if got := v.GetInt(idx); got != 0 {
		t.Errorf("GetInt() after Reset = %d, want 0", got)
	}
}

func TestAccess(t *testing.T) {
	schema := NewSchema()
	access := NewIntAccess(schema, "count")
	v := NewVariables(schema)

	access.SetInt(v, 10)
	if got := access.GetInt(v); got != 10 {
		t.Errorf("Access.GetInt() = %d, want 10", got)
	}
	if !access.IsSet(v) {
		t.Fatal("Access.IsSet() = false, want true")
	}

	// Binding the same name again must resolve to the same slot.
	again := NewIntAccess(schema, "count")
	if got := again.GetInt(v); got != 10 {
		t.Errorf("rebinding Access to the same name lost the value: got %d, want 10", got)
	}
}
