package enum

import (
	"fmt"
	"strings"

	"github.com/c360studio/setty/blueprint"
	"github.com/google/uuid"
)

// Enum is a built enum: the members of one Type, each a cached *Value.
// Every BuildStored call returns a new Enum; enums of the same type share
// their member values.
type Enum struct {
	id      uuid.UUID
	typ     *Type
	keys    []string
	members map[string]*Value
}

// ID identifies this enum instance.
func (e *Enum) ID() string {
	if e == nil {
		return ""
	}
	return e.id.String()
}

// Name returns the enum name, or "" for an unpopulated enum.
func (e *Enum) Name() string {
	if e == nil || e.typ == nil {
		return ""
	}
	return e.typ.name
}

// Type returns the enum type, or nil for an unpopulated enum.
func (e *Enum) Type() *Type {
	if e == nil {
		return nil
	}
	return e.typ
}

// Member returns the value of the constant called name.
func (e *Enum) Member(name string) (*Value, error) {
	if e == nil || len(e.members) == 0 {
		return nil, &Error{
			Kind:    ErrMemberNotConfigured,
			Message: "The appropriate values have not been set for this enum",
		}
	}

	v, ok := e.members[name]
	if !ok {
		return nil, &Error{
			Kind:    ErrMemberNotConfigured,
			Enum:    e.Name(),
			Message: fmt.Sprintf("The enum, %s, has no member named %s", e.Name(), name),
		}
	}
	return v, nil
}

// MustMember is Member that panics on error. Intended for package-level vars.
func (e *Enum) MustMember(name string) *Value {
	v, err := e.Member(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether the enum has a member called name.
func (e *Enum) Has(name string) bool {
	if e == nil {
		return false
	}
	_, ok := e.members[name]
	return ok
}

// Lookup finds the member whose value is value.
func (e *Enum) Lookup(value string) (name string, v *Value, ok bool) {
	if e == nil {
		return "", nil, false
	}
	for _, k := range e.keys {
		if m := e.members[k]; m.value == value {
			return k, m, true
		}
	}
	return "", nil, false
}

// Members returns the member names in blueprint order.
func (e *Enum) Members() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Values returns the member values in blueprint order.
func (e *Enum) Values() []*Value {
	if e == nil {
		return nil
	}
	out := make([]*Value, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, e.members[k])
	}
	return out
}

// Constants returns the name to value mapping the enum was built from.
func (e *Enum) Constants() blueprint.Constants {
	var c blueprint.Constants
	if e == nil {
		return c
	}
	for _, k := range e.keys {
		c.Add(k, e.members[k].value)
	}
	return c
}

// String renders the enum as Name{KEY=value, ...}.
func (e *Enum) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name())
	sb.WriteByte('{')
	if e != nil {
		for i, k := range e.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(e.members[k].value)
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
