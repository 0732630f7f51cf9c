package enum

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/setty/blueprint"
	"github.com/c360studio/setty/metrics"
	"github.com/google/uuid"
)

const (
	opStoreFromArray = "enum.Builder.StoreFromArray"
	opStore          = "enum.Builder.Store"
	opBuildStored    = "enum.Builder.BuildStored"
	opSynthesize     = "enum.Builder.Synthesize"
)

// Builder validates and stores blueprints and builds enums from them.
// Create one with NewBuilder; the zero value is not usable.
type Builder struct {
	registry *Registry
	values   *ValueBuilder
	types    typeTable
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewBuilder creates a builder that obtains member values from values.
// A nil values gets a private ValueBuilder with the same options.
func NewBuilder(values *ValueBuilder, opts ...Option) *Builder {
	o := newOptions(opts)
	if values == nil {
		values = NewValueBuilder(opts...)
	}
	if o.registry == nil {
		o.registry = NewRegistry()
	}
	return &Builder{
		registry: o.registry,
		values:   values,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// Registry returns the blueprint registry.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// Values returns the value builder.
func (b *Builder) Values() *ValueBuilder {
	return b.values
}

// StoreFromArray validates an untyped blueprint with "name" and "constant"
// keys and stores it. On failure it returns a *blueprint.Error and stores
// nothing. See blueprint.Validator for the accepted shapes.
func (b *Builder) StoreFromArray(raw map[string]any) error {
	return b.store(raw, opStoreFromArray)
}

// Store validates and stores a typed blueprint.
func (b *Builder) Store(bp blueprint.Blueprint) error {
	return b.store(bp.Raw(), opStore)
}

func (b *Builder) store(raw map[string]any, op string) error {
	v := blueprint.Validator{Operation: op, Exists: b.registry.Has}
	bp, err := v.Validate(raw)
	if err == nil {
		// Insert repeats the name check atomically for concurrent stores.
		err = b.registry.Insert(bp)
	}
	if err != nil {
		b.metrics.BlueprintRejected(blueprint.KindName(err))
		return err
	}

	b.metrics.BlueprintStored()
	b.logger.Debug("Stored enum blueprint",
		"enum", bp.Name,
		"constants", bp.Constants.Len())
	return nil
}

// Synthesize returns the enum type for a stored name, creating it on first
// call. Later calls return the same *Type.
func (b *Builder) Synthesize(name string) (*Type, error) {
	return b.synthesize(name, opSynthesize)
}

func (b *Builder) synthesize(name, op string) (*Type, error) {
	if t, ok := b.types.get(name); ok {
		return t, nil
	}

	constants, ok := b.registry.Lookup(name)
	if !ok {
		return nil, &Error{
			Kind:    ErrNotFound,
			Enum:    name,
			Message: fmt.Sprintf("The enum type passed to %s, %s, could not be found", op, name),
		}
	}

	t, created, err := b.types.ensure(name, constants)
	if err != nil {
		return nil, err
	}
	if created {
		b.metrics.EnumTypeSynthesized()
		b.logger.Debug("Synthesized enum type",
			"enum", name,
			"constants", constants.Len())
	}
	return t, nil
}

// BuildStored builds a new Enum for a stored name. Member values come from
// the ValueBuilder, so they are shared with every other Enum of that name.
func (b *Builder) BuildStored(name string) (*Enum, error) {
	t, err := b.synthesize(name, opBuildStored)
	if err != nil {
		return nil, err
	}

	e := &Enum{
		id:      uuid.New(),
		typ:     t,
		keys:    t.constants.Keys(),
		members: make(map[string]*Value, t.constants.Len()),
	}
	for k, v := range t.constants.All() {
		e.members[k] = b.values.BuildEnumValue(name, v)
	}

	t.built.Store(true)
	b.metrics.EnumBuilt()
	return e, nil
}

// State reports the lifecycle stage of name.
func (b *Builder) State(name string) State {
	if t, ok := b.types.get(name); ok {
		if t.built.Load() {
			return StateBuilt
		}
		return StateSynthesized
	}
	if b.registry.Has(name) {
		return StateStored
	}
	return StateUnregistered
}

// Stored returns stored names in the order they were stored.
func (b *Builder) Stored() []string {
	return b.registry.Names()
}
