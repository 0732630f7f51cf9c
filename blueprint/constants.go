package blueprint

import "iter"

// Constant is a single constant name and its string value.
type Constant struct {
	Name  string
	Value string
}

// Constants is an ordered mapping of constant names to values.
// The zero value is an empty, usable set.
type Constants struct {
	keys   []string
	values map[string]string

	// repeats records every Add of a name that was already present.
	repeats []Constant
}

// NewConstants returns a Constants holding the given pairs in order.
// A repeated name keeps its first position and takes the last value, and is
// reported by Repeated; validation rejects such a set.
func NewConstants(pairs ...Constant) Constants {
	var c Constants
	for _, p := range pairs {
		c.Add(p.Name, p.Value)
	}
	return c
}

// Add appends name with value, or replaces the value if name is present.
// A replacement is also recorded in Repeated.
func (c *Constants) Add(name, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, ok := c.values[name]; ok {
		c.repeats = append(c.repeats, Constant{Name: name, Value: value})
	} else {
		c.keys = append(c.keys, name)
	}
	c.values[name] = value
}

// Repeated returns the pairs whose name was already present when added, in
// the order they were added.
func (c Constants) Repeated() []Constant {
	out := make([]Constant, len(c.repeats))
	copy(out, c.repeats)
	return out
}

// Len returns the number of constants.
func (c Constants) Len() int {
	return len(c.keys)
}

// Keys returns the constant names in order.
func (c Constants) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Value returns the value stored for name.
func (c Constants) Value(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// All iterates over name/value pairs in order.
func (c Constants) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

// Pairs returns the constants as an ordered slice.
func (c Constants) Pairs() []Constant {
	out := make([]Constant, 0, len(c.keys))
	for k, v := range c.All() {
		out = append(out, Constant{Name: k, Value: v})
	}
	return out
}

// Map returns an unordered copy of the constants.
func (c Constants) Map() map[string]string {
	out := make(map[string]string, len(c.keys))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy that shares no storage with c. Repeat history is
// not carried over.
func (c Constants) Clone() Constants {
	return NewConstants(c.Pairs()...)
}

// Equal reports whether both sets hold the same pairs in the same order.
func (c Constants) Equal(other Constants) bool {
	if len(c.keys) != len(other.keys) {
		return false
	}
	for i, k := range c.keys {
		if other.keys[i] != k || other.values[k] != c.values[k] {
			return false
		}
	}
	return true
}

// DuplicateValue returns the first value that appears under more than one name.
func (c Constants) DuplicateValue() (string, bool) {
	seen := make(map[string]struct{}, len(c.keys))
	for _, k := range c.keys {
		v := c.values[k]
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
