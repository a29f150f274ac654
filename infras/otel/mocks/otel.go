// Package mocks provides a tracer for tests. Scopes run against the no-op provider, so the
// real Scope code paths execute without recording anything.
package mocks

import (
	"hotelops/infras/otel"

	"go.opentelemetry.io/otel/trace/noop"
)

func NewOtel() otel.Otel {
	return otel.NewWithProvider(noop.NewTracerProvider())
}
