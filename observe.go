package state

import (
	"context"
	"log/slog"
	"reflect"
)

// Observer receives a record of every registration and typed lookup.
type Observer interface {
	StateRegistered(reg Registration)
	StateLookedUp(result LookupResult)
}

// Registration describes one Register call.
type Registration struct {
	Type     reflect.Type
	Replaced bool
	Entries  int
}

// LookupResult describes one Get or Lookup call.
type LookupResult struct {
	Type  reflect.Type
	Found bool
}

type loggingObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLoggingObserver logs each record as key-value attributes at level.
// A nil logger yields an observer that does nothing.
func NewLoggingObserver(logger *slog.Logger, level slog.Level) Observer {
	if logger == nil {
		return noopObserver{}
	}
	return loggingObserver{logger: logger, level: level}
}

func (o loggingObserver) StateRegistered(reg Registration) {
	o.logger.Log(context.Background(), o.level, "state registration",
		"type", typeName(reg.Type),
		"replaced", reg.Replaced,
		"entries", reg.Entries,
	)
}

func (o loggingObserver) StateLookedUp(result LookupResult) {
	o.logger.Log(context.Background(), o.level, "state lookup",
		"type", typeName(result.Type),
		"found", result.Found,
	)
}

type noopObserver struct{}

func (noopObserver) StateRegistered(Registration) {}

func (noopObserver) StateLookedUp(LookupResult) {}
