package session

// Type identifies the storage kind of a declared session variable.
type Type int

const (
	// TypeInt stores a boxed-free int64, used by the specialized
	// GetInt/SetInt accessors on the hot path (step predicates comparing
	// counters, loop indices, extracted numeric values).
	TypeInt Type = iota
	// TypeObject stores an arbitrary value (string, []byte, parsed JSON,
	// …) behind interface{}.
	TypeObject
)

// Schema is the fixed-size variable layout derived once, at benchmark-build
// time, by collecting every variable name referenced by any step in a
// scenario (spec.md §4.6). Deriving the layout up front means a session's
// variable table is a flat slice indexed by slot number, never a per-access
// map lookup.
type Schema struct {
	index map[string]int
	types []Type
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// Declare reserves a slot for name with the given type and returns its
// index. Declaring the same name twice returns the same index; the type
// from the first declaration wins.
func (s *Schema) Declare(name string, t Type) int {
	if idx, ok := s.index[name]; ok {
		return idx
	}
	idx := len(s.types)
	s.index[name] = idx
	s.types = append(s.types, t)
	return idx
}

// Lookup returns the slot index for name and whether it was declared.
func (s *Schema) Lookup(name string) (int, bool) {
	idx, ok := s.index[name]
	return idx, ok
}

// Len returns the number of declared slots.
func (s *Schema) Len() int { return len(s.types) }

// Variables is a session's typed variable table: a fixed-size record laid
// out by a Schema, with get/set/isSet/unset and int-specialized accessors
// that avoid boxing on the hot path (spec.md §4.6).
type Variables struct {
	schema *Schema
	set    []bool
	ints   []int64
	objs   []interface{}
}

// NewVariables allocates a Variables table sized to schema. Session pool
// allocation (spec.md §4.1 — "allocate n sessions eagerly") calls this once
// per pooled session; Reset clears it for reuse instead of reallocating.
func NewVariables(schema *Schema) *Variables {
	n := schema.Len()
	return &Variables{
		schema: schema,
		set:    make([]bool, n),
		ints:   make([]int64, n),
		objs:   make([]interface{}, n),
	}
}

// IsSet reports whether the variable at idx currently holds a value.
func (v *Variables) IsSet(idx int) bool { return v.set[idx] }

// Unset clears the variable at idx.
func (v *Variables) Unset(idx int) {
	v.set[idx] = false
	v.ints[idx] = 0
	v.objs[idx] = nil
}

// Get returns the variable at idx as interface{}. For TypeInt slots this
// boxes the value — prefer GetInt on the hot path.
func (v *Variables) Get(idx int) interface{} {
	if !v.set[idx] {
		return nil
	}
	if v.schema.types[idx] == TypeInt {
		return v.ints[idx]
	}
	return v.objs[idx]
}

// Set stores val at idx, boxing through interface{}.
func (v *Variables) Set(idx int, val interface{}) {
	v.set[idx] = true
	if v.schema.types[idx] == TypeInt {
		switch n := val.(type) {
		case int64:
			v.ints[idx] = n
		case int:
			v.ints[idx] = int64(n)
		default:
			v.objs[idx] = val
		}
		return
	}
	v.objs[idx] = val
}

// GetInt returns the int64 stored at idx without boxing. Calling it on an
// unset or non-int slot returns 0.
func (v *Variables) GetInt(idx int) int64 {
	if !v.set[idx] {
		return 0
	}
	return v.ints[idx]
}

// SetInt stores an int64 at idx without boxing.
func (v *Variables) SetInt(idx int, val int64) {
	v.set[idx] = true
	v.ints[idx] = val
}

// Reset clears every slot, returning the table to its just-allocated state.
// Called by the pool on release and by the closed-loop arrival models
// (Always, Sequentially) before re-driving the same session object.
func (v *Variables) Reset() {
	for i := range v.set {
		v.set[i] = false
		v.ints[i] = 0
		v.objs[i] = nil
	}
}

// Access resolves a variable name once (at scenario-build time) into a
// slot accessor, so steps never re-look-up a name at runtime — mirroring
// the reference implementation's Session.Access pattern used throughout
// its step library (see AwaitIntStep.java: `SessionFactory.access(var)`).
type Access struct {
	idx int
}

// NewAccess binds name against schema, declaring it as TypeObject if it was
// not already declared.
func NewAccess(schema *Schema, name string) Access {
	idx, ok := schema.Lookup(name)
	if !ok {
		idx = schema.Declare(name, TypeObject)
	}
	return Access{idx: idx}
}

// NewIntAccess binds name against schema as a TypeInt slot.
func NewIntAccess(schema *Schema, name string) Access {
	idx, ok := schema.Lookup(name)
	if !ok {
		idx = schema.Declare(name, TypeInt)
	}
	return Access{idx: idx}
}

func (a Access) IsSet(v *Variables) bool       { return v.IsSet(a.idx) }
func (a Access) Unset(v *Variables)            { v.Unset(a.idx) }
func (a Access) Get(v *Variables) interface{}  { return v.Get(a.idx) }
func (a Access) Set(v *Variables, val interface{}) { v.Set(a.idx, val) }
func (a Access) GetInt(v *Variables) int64     { return v.GetInt(a.idx) }
func (a Access) SetInt(v *Variables, val int64) { v.SetInt(a.idx, val) }
