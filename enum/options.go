package enum

import (
	"log/slog"

	"github.com/c360studio/setty/metrics"
)

// Option configures a Builder or ValueBuilder.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	registry *Registry
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithRegistry makes a Builder store blueprints in r instead of a fresh
// registry. Ignored by ValueBuilder.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
