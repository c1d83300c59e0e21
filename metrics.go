package state

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Lookup result label values.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
)

// Metrics records registry activity as Prometheus collectors.
type Metrics struct {
	RegistrationsTotal *prometheus.CounterVec
	LookupsTotal       *prometheus.CounterVec
	Entries            prometheus.Gauge
}

// NewMetrics creates the registry collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RegistrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "state_registrations_total",
				Help: "Total number of state registrations by type and whether an instance was replaced",
			},
			[]string{"type", "replaced"},
		),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "state_lookups_total",
				Help: "Total number of typed state lookups by type and result",
			},
			[]string{"type", "result"},
		),
		Entries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "state_entries",
				Help: "Number of types currently registered",
			},
		),
	}

	reg.MustRegister(m.RegistrationsTotal)
	reg.MustRegister(m.LookupsTotal)
	reg.MustRegister(m.Entries)

	return m
}

// StateRegistered implements Observer.
func (m *Metrics) StateRegistered(r Registration) {
	replaced := "false"
	if r.Replaced {
		replaced = "true"
	}
	m.RegistrationsTotal.WithLabelValues(typeName(r.Type), replaced).Inc()
	m.Entries.Set(float64(r.Entries))
}

// StateLookedUp implements Observer.
func (m *Metrics) StateLookedUp(l LookupResult) {
	result := LookupNotFound
	if l.Found {
		result = LookupFound
	}
	m.LookupsTotal.WithLabelValues(typeName(l.Type), result).Inc()
}

var _ Observer = (*Metrics)(nil)
