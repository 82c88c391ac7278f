// Package telemetry provides hierarchical timing collection for ledger
// operations. Collectors travel through the context, so instrumentation
// costs nothing when no collector is attached.
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers operation timings.
type Collector interface {
	// Start begins timing an operation; end it with Timer.End.
	Start(name string) Timer

	// Report writes the collected timings.
	Report(w io.Writer)
}

// Timer tracks one operation and supports nesting via Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext returns the context's collector, or a no-op one.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer)      {}

type noOpTimer struct{}

func (noOpTimer) End()                   {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
