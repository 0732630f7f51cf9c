package enum

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/c360studio/setty/metrics"
)

type valueKey struct {
	typeName string
	value    string
}

// ValueBuilder hands out enum values, one instance per (enum name, value).
// Entries are never evicted. The zero value is ready to use and logs to
// slog.Default().
type ValueBuilder struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu    sync.RWMutex
	cache map[valueKey]*Value

	typesMu sync.Mutex
	types   map[string]*ValueType
}

// NewValueBuilder creates an empty value builder.
func NewValueBuilder(opts ...Option) *ValueBuilder {
	o := newOptions(opts)
	return &ValueBuilder{
		logger:  o.logger,
		metrics: o.metrics,
		cache:   make(map[valueKey]*Value),
		types:   make(map[string]*ValueType),
	}
}

// BuildEnumValue returns the value for typeName and value, creating it on
// first request. Repeated calls with the same arguments return the same
// pointer. Any string is accepted; blueprint validation happens upstream.
func (b *ValueBuilder) BuildEnumValue(typeName, value string) *Value {
	key := valueKey{typeName: typeName, value: value}

	b.mu.RLock()
	v, ok := b.cache[key]
	b.mu.RUnlock()
	if ok {
		b.metrics.ValueCacheHit()
		return v
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if v, ok := b.cache[key]; ok {
		b.metrics.ValueCacheHit()
		return v
	}

	if b.cache == nil {
		b.cache = make(map[valueKey]*Value)
	}
	v = &Value{typ: b.valueType(typeName), value: value}
	b.cache[key] = v
	b.metrics.ValueCacheMiss()
	return v
}

// ValueType returns the synthesized value type for typeName, if any.
func (b *ValueBuilder) ValueType(typeName string) (*ValueType, bool) {
	b.typesMu.Lock()
	defer b.typesMu.Unlock()
	t, ok := b.types[typeName]
	return t, ok
}

// Types returns the names of all synthesized value types, sorted.
func (b *ValueBuilder) Types() []string {
	b.typesMu.Lock()
	defer b.typesMu.Unlock()

	names := make([]string, 0, len(b.types))
	for name := range b.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of cached values.
func (b *ValueBuilder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.cache)
}

// valueType synthesizes the type for typeName on first use.
func (b *ValueBuilder) valueType(typeName string) *ValueType {
	b.typesMu.Lock()
	defer b.typesMu.Unlock()

	if t, ok := b.types[typeName]; ok {
		return t
	}

	if b.types == nil {
		b.types = make(map[string]*ValueType)
	}
	t := &ValueType{name: typeName}
	b.types[typeName] = t
	b.metrics.ValueTypeSynthesized()
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Synthesized enum value type", "enum", typeName)
	return t
}
