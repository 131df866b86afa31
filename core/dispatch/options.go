package dispatch

import (
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"

	"github.com/joorhq/joor/core/handler"
)

// tracerName identifies spans started by the dispatcher.
const tracerName = "github.com/joorhq/joor/core/dispatch"

// Default WebSocket buffer sizes.
const (
	DefaultReadBufferSize  = 1024
	DefaultWriteBufferSize = 1024
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for Error Signals and debug records.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithMetrics enables Prometheus collection.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithTracerProvider sets the provider spans are started from.
// The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Dispatcher) {
		if tp != nil {
			d.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithUpgrader replaces the WebSocket upgrader used for socket responses.
func WithUpgrader(u *websocket.Upgrader) Option {
	return func(d *Dispatcher) {
		if u != nil {
			d.upgrader = u
		}
	}
}

// WithFallback sets a handler consulted for GET requests no route matches,
// typically a static file handler. Only a 200 answer is kept; anything
// else becomes the regular 404.
func WithFallback(h handler.Func) Option {
	return func(d *Dispatcher) {
		d.fallback = h
	}
}
