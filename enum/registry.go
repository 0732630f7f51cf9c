package enum

import (
	"sync"

	"github.com/c360studio/setty/blueprint"
)

// Registry stores validated blueprints by enum name.
// Entries are written once and never replaced or removed.
type Registry struct {
	mu         sync.RWMutex
	blueprints map[string]blueprint.Constants
	order      []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blueprints: make(map[string]blueprint.Constants),
	}
}

// Insert stores bp unless its name is already present, in which case it
// returns a blueprint.ErrDuplicateName error and leaves the registry as is.
// The registry keeps its own copy of the constants.
func (r *Registry) Insert(bp blueprint.Blueprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blueprints[bp.Name]; ok {
		return blueprint.DuplicateNameError(bp.Name)
	}
	r.blueprints[bp.Name] = bp.Constants.Clone()
	r.order = append(r.order, bp.Name)
	return nil
}

// Has reports whether name is stored.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.blueprints[name]
	return ok
}

// Lookup returns a copy of the constants stored for name.
func (r *Registry) Lookup(name string) (blueprint.Constants, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.blueprints[name]
	if !ok {
		return blueprint.Constants{}, false
	}
	return c.Clone(), true
}

// Names returns stored names in the order they were stored.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of stored blueprints.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blueprints)
}
