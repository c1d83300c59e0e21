package state

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver adds an observer notified of registrations and lookups.
// Observers run synchronously in the order they were added.
func WithObserver(observer Observer) Option {
	return func(r *Registry) {
		if observer != nil {
			r.observers = append(r.observers, observer)
		}
	}
}

// WithMetrics registers Prometheus collectors on reg and records registry
// activity into them. A Registerer can back only one Registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		if reg != nil {
			r.observers = append(r.observers, NewMetrics(reg))
		}
	}
}
