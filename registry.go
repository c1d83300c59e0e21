// Package state provides a type-indexed registry of shared, mutable engine
// state.
//
// Each registered type has exactly one canonical instance, held in a Cell.
// Subsystems fetch cloned handles to that instance with Get or Lookup and
// mutate it through an exclusive View; every other holder observes the
// change. The registry is meant for single-threaded use by an engine loop.
package state

import (
	"log/slog"
	"reflect"
	"sort"
)

// Registry maps type identity to the canonical Cell for that type.
type Registry struct {
	entries   map[reflect.Type]any
	logger    *slog.Logger
	observers []Observer
}

// New constructs a registry pre-populated with the built-in states: Time,
// Events and Chunks, each in its zero value.
func New(opts ...Option) *Registry {
	r := NewEmpty(opts...)
	Register(r, Time{})
	Register(r, Events{})
	Register(r, Chunks{})
	return r
}

// NewEmpty constructs a registry with no entries.
func NewEmpty(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[reflect.Type]any),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register installs value as the canonical instance of S.
//
// A previous instance of S is replaced. Handles obtained before the
// replacement are not retargeted: they keep observing the old instance.
func Register[S any](r *Registry, value S) {
	t := reflect.TypeFor[S]()
	_, replaced := r.entries[t]
	r.entries[t] = NewCell(value)

	if replaced {
		r.logger.Warn("state replaced; existing handles keep the previous instance", "type", typeName(t))
	} else {
		r.logger.Debug("state registered", "type", typeName(t))
	}
	r.notifyRegistered(Registration{Type: t, Replaced: replaced, Entries: len(r.entries)})
}

// Lookup returns a handle to the instance of S, or false if S is not
// registered.
func Lookup[S any](r *Registry) (Cell[S], bool) {
	t := reflect.TypeFor[S]()
	c, ok := lookup[S](r, t)
	r.notifyLookup(LookupResult{Type: t, Found: ok})
	return c, ok
}

// Get returns a handle to the instance of S. A missing entry yields an
// error matching ErrNotRegistered that carries the requested type.
func Get[S any](r *Registry) (Cell[S], error) {
	t := reflect.TypeFor[S]()
	c, ok := lookup[S](r, t)
	r.notifyLookup(LookupResult{Type: t, Found: ok})
	if !ok {
		r.logger.Debug("state lookup failed", "type", typeName(t))
		return Cell[S]{}, notRegistered(t)
	}
	return c, nil
}

// MustGet is like Get but panics if S is not registered.
func MustGet[S any](r *Registry) Cell[S] {
	c, err := Get[S](r)
	if err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether S is registered. It is not counted as a lookup.
func Contains[S any](r *Registry) bool {
	_, ok := lookup[S](r, reflect.TypeFor[S]())
	return ok
}

// Borrow looks up S and runs fn with exclusive access to its instance.
func Borrow[S any](r *Registry, fn func(*S)) error {
	c, err := Get[S](r)
	if err != nil {
		return err
	}
	c.With(fn)
	return nil
}

func lookup[S any](r *Registry, t reflect.Type) (Cell[S], bool) {
	entry, ok := r.entries[t]
	if !ok {
		return Cell[S]{}, false
	}
	c, ok := entry.(Cell[S])
	if !ok {
		return Cell[S]{}, false
	}
	return c.Clone(), true
}

// Len reports how many types are registered.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Types lists the registered type identities sorted by name.
func (r *Registry) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

func (r *Registry) notifyRegistered(reg Registration) {
	for _, o := range r.observers {
		o.StateRegistered(reg)
	}
}

func (r *Registry) notifyLookup(l LookupResult) {
	for _, o := range r.observers {
		o.StateLookedUp(l)
	}
}
