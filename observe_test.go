package state_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerosoDavo/state"
)

type recordingObserver struct {
	registrations []state.Registration
	lookups       []state.LookupResult
}

func (o *recordingObserver) StateRegistered(reg state.Registration) {
	o.registrations = append(o.registrations, reg)
}

func (o *recordingObserver) StateLookedUp(result state.LookupResult) {
	o.lookups = append(o.lookups, result)
}

func TestObserverSeesBootstrapAndLookups(t *testing.T) {
	obs := &recordingObserver{}
	r := state.New(state.WithObserver(obs), state.WithObserver(nil))

	require.Len(t, obs.registrations, 3)
	assert.Equal(t, 3, obs.registrations[2].Entries)

	state.Register(r, state.Time{})
	last := obs.registrations[len(obs.registrations)-1]
	assert.True(t, last.Replaced)
	assert.Equal(t, 3, last.Entries)

	_, _ = state.Get[state.Time](r)
	_, _ = state.Lookup[customState](r)
	_ = state.Contains[state.Time](r)

	require.Len(t, obs.lookups, 2)
	assert.True(t, obs.lookups[0].Found)
	assert.False(t, obs.lookups[1].Found)
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := state.NewEmpty(state.WithObserver(state.NewLoggingObserver(logger, slog.LevelInfo)))
	state.Register(r, customState{})
	_, _ = state.Lookup[customState](r)

	out := buf.String()
	assert.Contains(t, out, "state registration")
	assert.Contains(t, out, "replaced=false")
	assert.Contains(t, out, "state lookup")
	assert.Contains(t, out, "found=true")
}

func TestLoggingObserverNilLogger(t *testing.T) {
	obs := state.NewLoggingObserver(nil, slog.LevelInfo)
	assert.NotPanics(t, func() {
		obs.StateRegistered(state.Registration{})
		obs.StateLookedUp(state.LookupResult{})
	})
}

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := state.NewMetrics(reg)

	r := state.New(state.WithObserver(m))
	state.Register(r, state.Time{})
	_, _ = state.Get[state.Time](r)
	_, _ = state.Get[customState](r)

	assert.InDelta(t, 3, testutil.ToFloat64(m.Entries), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues("state.Time", "false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues("state.Time", "true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("state.Time", state.LookupFound)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("state_test.customState", state.LookupNotFound)), 0)
}

func TestWithMetricsRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = state.New(state.WithMetrics(reg))

	count, err := testutil.GatherAndCount(reg, "state_registrations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = testutil.GatherAndCount(reg, "state_entries")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
