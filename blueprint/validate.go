package blueprint

import (
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

const defaultOperation = "blueprint.Validate"

var (
	validName         = regexp.MustCompile(`^[A-Za-z_]+$`)
	validConstantName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Validator turns an untyped blueprint into a Blueprint.
//
// Checks run in a fixed order so the first reported defect is stable:
// missing keys, name type, name characters, duplicate name, constants
// container, then for each constant in order its key type, key characters,
// value type and value uniqueness.
type Validator struct {
	// Operation names the caller in error messages.
	Operation string

	// Exists reports whether name is already registered. Nil skips the check.
	Exists func(name string) bool
}

// Validate checks raw and returns the normalized blueprint.
func (v Validator) Validate(raw map[string]any) (Blueprint, error) {
	op := v.Operation
	if op == "" {
		op = defaultOperation
	}

	rawName, hasName := raw[KeyName]
	rawConstants, hasConstants := raw[KeyConstant]
	if !hasName || !hasConstants {
		return Blueprint{}, newError(ErrMissingKeys, "",
			"The blueprint passed to %s must have '%s' and '%s' keys set", op, KeyName, KeyConstant)
	}

	name, ok := rawName.(string)
	if !ok || name == "" {
		return Blueprint{}, newError(ErrInvalidName, "",
			"The value stored in the '%s' key in the blueprint passed to %s must be a non-empty string type", KeyName, op)
	}
	if !validName.MatchString(name) {
		return Blueprint{}, newError(ErrInvalidName, name,
			"The value stored in the '%s' key in the blueprint passed to %s may only have letter and underscore characters", KeyName, op)
	}

	if v.Exists != nil && v.Exists(name) {
		return Blueprint{}, DuplicateNameError(name)
	}

	entries, ok := mappingEntries(rawConstants)
	if !ok || len(entries) == 0 {
		return Blueprint{}, newError(ErrInvalidConstants, name,
			"The value stored in the '%s' key in the blueprint passed to %s must be a non-empty mapping type", KeyConstant, op)
	}

	var constants Constants
	keys := make(map[string]struct{}, len(entries))
	values := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key, ok := e.key.(string)
		if !ok || key == "" {
			return Blueprint{}, newError(ErrInvalidConstantKey, name,
				"The keys stored in the '%s' mapping in the blueprint passed to %s must be a non-empty string type", KeyConstant, op)
		}
		if !validConstantName.MatchString(key) {
			return Blueprint{}, newError(ErrInvalidConstantKey, name,
				"The keys stored in the '%s' mapping in the blueprint passed to %s may only have letters, numbers and underscore characters", KeyConstant, op)
		}
		if _, dup := keys[key]; dup {
			return Blueprint{}, DuplicateConstantNameError(name, key)
		}
		keys[key] = struct{}{}

		value, ok := e.value.(string)
		if !ok || value == "" {
			return Blueprint{}, newError(ErrInvalidConstantValue, name,
				"The values stored in the '%s' mapping passed to %s must be non-empty string values", KeyConstant, op)
		}
		if _, dup := values[value]; dup {
			return Blueprint{}, DuplicateValueError(name, value)
		}
		values[value] = struct{}{}

		constants.Add(key, value)
	}

	return Blueprint{Name: name, Constants: constants}, nil
}

// DuplicateNameError reports that name is already registered.
func DuplicateNameError(name string) error {
	return newError(ErrDuplicateName, name, "The enum type passed, %s, has already been stored", name)
}

// DuplicateConstantNameError reports that key appears twice in the blueprint for name.
func DuplicateConstantNameError(name, key string) error {
	return newError(ErrInvalidConstantKey, name, "The enum, %s, has a duplicate constant name: %s", name, key)
}

// DuplicateValueError reports that value appears twice in the blueprint for name.
func DuplicateValueError(name, value string) error {
	return newError(ErrDuplicateValue, name, "The enum, %s, has a duplicate constant value: %s", name, value)
}

func newError(kind error, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Blueprint: name, Message: fmt.Sprintf(format, args...)}
}

type entry struct {
	key   any
	value any
}

// mappingEntries flattens a constants container into ordered entries.
// Go maps carry no order, so their entries are sorted by key. Names repeated
// in a Constants follow its ordered pairs.
func mappingEntries(container any) ([]entry, bool) {
	switch c := container.(type) {
	case Constants:
		return constantEntries(append(c.Pairs(), c.repeats...)), true
	case *Constants:
		if c == nil {
			return nil, false
		}
		return constantEntries(append(c.Pairs(), c.repeats...)), true
	case []Constant:
		return constantEntries(c), true
	case map[string]string:
		keys := sortedKeys(c)
		out := make([]entry, 0, len(keys))
		for _, k := range keys {
			out = append(out, entry{key: k, value: c[k]})
		}
		return out, true
	case map[string]any:
		keys := sortedKeys(c)
		out := make([]entry, 0, len(keys))
		for _, k := range keys {
			out = append(out, entry{key: k, value: c[k]})
		}
		return out, true
	case map[any]any:
		out := make([]entry, 0, len(c))
		for k, v := range c {
			out = append(out, entry{key: k, value: v})
		}
		sort.SliceStable(out, func(i, j int) bool {
			return fmt.Sprint(out[i].key) < fmt.Sprint(out[j].key)
		})
		return out, true
	case *yaml.Node:
		if c == nil {
			return nil, false
		}
		return nodeEntries(c)
	case yaml.Node:
		return nodeEntries(&c)
	}
	return nil, false
}

func constantEntries(pairs []Constant) []entry {
	out := make([]entry, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, entry{key: p.Name, value: p.Value})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// nodeEntries reads a YAML mapping in document order. Keys and values that
// are not plain string scalars are passed through as nodes so the caller
// rejects them as non-strings.
func nodeEntries(n *yaml.Node) ([]entry, bool) {
	n = resolveNode(n)
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = resolveNode(n.Content[0])
	}
	if n.Kind != yaml.MappingNode {
		return nil, false
	}

	out := make([]entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, entry{
			key:   nodeString(n.Content[i]),
			value: nodeString(n.Content[i+1]),
		})
	}
	return out, true
}

func resolveNode(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeString(n *yaml.Node) any {
	n = resolveNode(n)
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str" {
		return n.Value
	}
	return n
}
