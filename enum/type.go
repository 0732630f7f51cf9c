package enum

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/c360studio/setty/blueprint"
)

// Type is a synthesized enum type: a name and its closed, ordered set of
// constants. At most one Type exists per name in a Builder.
type Type struct {
	name      string
	constants blueprint.Constants
	built     atomic.Bool
}

// Name returns the enum name.
func (t *Type) Name() string {
	return t.name
}

// Constants returns the name to value mapping in blueprint order.
func (t *Type) Constants() blueprint.Constants {
	return t.constants.Clone()
}

// typeTable tracks synthesized types. ensure is the atomic test-and-set.
type typeTable struct {
	mu    sync.Mutex
	types map[string]*Type
}

func (tt *typeTable) get(name string) (*Type, bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	t, ok := tt.types[name]
	return t, ok
}

// ensure returns the type for name, synthesizing it from constants if it
// does not exist yet. created reports whether this call synthesized it.
func (tt *typeTable) ensure(name string, constants blueprint.Constants) (t *Type, created bool, err error) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if t, ok := tt.types[name]; ok {
		return t, false, nil
	}

	if value, dup := constants.DuplicateValue(); dup {
		return nil, false, &Error{
			Kind:    ErrDuplicateValue,
			Enum:    name,
			Message: fmt.Sprintf("The enum, %s, has a duplicate constant value: %s", name, value),
		}
	}

	if tt.types == nil {
		tt.types = make(map[string]*Type)
	}
	t = &Type{name: name, constants: constants.Clone()}
	tt.types[name] = t
	return t, true, nil
}
