package enum

// ValueType is the type shared by every value of one enum name.
// Two values belong to the same enum exactly when their types are the
// same pointer.
type ValueType struct {
	name string
}

// Name returns the enum name the type was synthesized for.
func (t *ValueType) Name() string {
	return t.name
}

// Value is one enum member. Values are immutable and compared by identity.
type Value struct {
	typ   *ValueType
	value string
}

// String returns the value the member was constructed with, and nothing else.
func (v *Value) String() string {
	return v.value
}

// Type returns the value's enum type.
func (v *Value) Type() *ValueType {
	return v.typ
}

// Is reports whether v and other are the same member.
func (v *Value) Is(other *Value) bool {
	return v == other
}
