// Package metrics exposes Prometheus counters for the enum builders.
//
// A nil *Metrics is valid and records nothing, so builders can hold one
// unconditionally.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "setty"

// Metrics holds the builder counters.
type Metrics struct {
	blueprintsStored     prometheus.Counter
	blueprintRejections  *prometheus.CounterVec
	enumTypesSynthesized prometheus.Counter
	enumBuilds           prometheus.Counter
	valueTypesSynthesize prometheus.Counter
	valueCacheHits       prometheus.Counter
	valueCacheMisses     prometheus.Counter
}

// New creates the counters and registers them with reg.
// A nil reg leaves them unregistered, which is useful in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		blueprintsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blueprints_stored_total",
			Help:      "Enum blueprints validated and stored.",
		}),
		blueprintRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blueprint_rejections_total",
			Help:      "Enum blueprints rejected by validation, by failure kind.",
		}, []string{"kind"}),
		enumTypesSynthesized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enum_types_synthesized_total",
			Help:      "Enum types synthesized on first build.",
		}),
		enumBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enum_builds_total",
			Help:      "Enum instances built from stored blueprints.",
		}),
		valueTypesSynthesize: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "value_types_synthesized_total",
			Help:      "Enum value types synthesized on first use.",
		}),
		valueCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "value_cache_hits_total",
			Help:      "Enum value requests served from the cache.",
		}),
		valueCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "value_cache_misses_total",
			Help:      "Enum value requests that created a new value.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.blueprintsStored,
			m.blueprintRejections,
			m.enumTypesSynthesized,
			m.enumBuilds,
			m.valueTypesSynthesize,
			m.valueCacheHits,
			m.valueCacheMisses,
		)
	}
	return m
}

// BlueprintStored counts a stored blueprint.
func (m *Metrics) BlueprintStored() {
	if m == nil {
		return
	}
	m.blueprintsStored.Inc()
}

// BlueprintRejected counts a rejected blueprint under kind.
func (m *Metrics) BlueprintRejected(kind string) {
	if m == nil {
		return
	}
	m.blueprintRejections.WithLabelValues(kind).Inc()
}

// EnumTypeSynthesized counts a newly synthesized enum type.
func (m *Metrics) EnumTypeSynthesized() {
	if m == nil {
		return
	}
	m.enumTypesSynthesized.Inc()
}

// EnumBuilt counts a built enum instance.
func (m *Metrics) EnumBuilt() {
	if m == nil {
		return
	}
	m.enumBuilds.Inc()
}

// ValueTypeSynthesized counts a newly synthesized value type.
func (m *Metrics) ValueTypeSynthesized() {
	if m == nil {
		return
	}
	m.valueTypesSynthesize.Inc()
}

// ValueCacheHit counts a cached value lookup.
func (m *Metrics) ValueCacheHit() {
	if m == nil {
		return
	}
	m.valueCacheHits.Inc()
}

// ValueCacheMiss counts a value created on lookup.
func (m *Metrics) ValueCacheMiss() {
	if m == nil {
		return
	}
	m.valueCacheMisses.Inc()
}
