package joor

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"

	"github.com/joorhq/joor/core/dispatch"
	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/response"
	"github.com/joorhq/joor/core/router"
	"github.com/joorhq/joor/core/server"
	"github.com/joorhq/joor/middleware"
)

// App collects routes, then serves them. Registration happens before the
// first call to Handler, Handle or Serve; afterwards the route table is
// sealed and registration fails with route-table-sealed.
type App struct {
	table    *router.Table
	log      *slog.Logger
	fallback handler.Func
	dopts    []dispatch.Option

	once       sync.Once
	dispatcher *dispatch.Dispatcher
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger shared by the dispatcher and the server.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMetrics enables Prometheus request metrics.
func WithMetrics(m *dispatch.Metrics) Option {
	return func(a *App) {
		a.dopts = append(a.dopts, dispatch.WithMetrics(m))
	}
}

// WithTracerProvider sets the OpenTelemetry provider for dispatch spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *App) {
		a.dopts = append(a.dopts, dispatch.WithTracerProvider(tp))
	}
}

// WithUpgrader sets the WebSocket upgrader used for socket responses.
func WithUpgrader(u *websocket.Upgrader) Option {
	return func(a *App) {
		a.dopts = append(a.dopts, dispatch.WithUpgrader(u))
	}
}

// New creates an App with an empty route table.
func New(opts ...Option) *App {
	a := &App{
		table: router.New(),
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register binds middlewares and handlers to method and path.
func (a *App) Register(method, path string, middlewares, handlers []handler.Func, opts ...router.RouteOption) error {
	return a.table.Register(method, path, middlewares, handlers, opts...)
}

// Use binds middlewares to path. A trailing "/*" applies them to the whole
// subtree.
func (a *App) Use(path string, middlewares ...handler.Func) error {
	return a.table.Use(path, middlewares...)
}

// Get registers handlers for GET. It panics on a registration error.
func (a *App) Get(path string, handlers ...handler.Func) {
	a.must(http.MethodGet, path, handlers)
}

// Post registers handlers for POST. It panics on a registration error.
func (a *App) Post(path string, handlers ...handler.Func) {
	a.must(http.MethodPost, path, handlers)
}

// Put registers handlers for PUT. It panics on a registration error.
func (a *App) Put(path string, handlers ...handler.Func) {
	a.must(http.MethodPut, path, handlers)
}

// Patch registers handlers for PATCH. It panics on a registration error.
func (a *App) Patch(path string, handlers ...handler.Func) {
	a.must(http.MethodPatch, path, handlers)
}

// Delete registers handlers for DELETE. It panics on a registration error.
func (a *App) Delete(path string, handlers ...handler.Func) {
	a.must(http.MethodDelete, path, handlers)
}

func (a *App) must(method, path string, handlers []handler.Func) {
	if err := a.table.Register(method, path, nil, handlers); err != nil {
		panic(err)
	}
}

// Fallback sets the handler for unmatched GET requests. Only a 200 answer
// is kept, anything else becomes 404.
func (a *App) Fallback(h handler.Func) {
	a.fallback = h
}

// Static serves a directory for unmatched GET requests under cfg.RoutePath.
func (a *App) Static(cfg middleware.StaticConfig) {
	a.Fallback(middleware.Static(cfg))
}

// Routes lists the registered endpoints.
func (a *App) Routes() []router.RouteInfo {
	return a.table.Routes()
}

// Handler seals the route table and returns the dispatcher. Later calls
// return the same dispatcher.
func (a *App) Handler() *dispatch.Dispatcher {
	a.once.Do(func() {
		opts := append([]dispatch.Option{dispatch.WithLogger(a.log)}, a.dopts...)
		if a.fallback != nil {
			opts = append(opts, dispatch.WithFallback(a.fallback))
		}
		a.dispatcher = dispatch.New(a.table.Seal(), opts...)
	})
	return a.dispatcher
}

// Handle dispatches a request without a transport. r may be nil.
func (a *App) Handle(ctx context.Context, method, path string, r *http.Request) *response.Prepared {
	return a.Handler().Dispatch(ctx, method, path, r)
}

// Serve listens on cfg and serves until ctx is canceled, then shuts down
// gracefully.
func (a *App) Serve(ctx context.Context, cfg server.Config, opts ...server.Option) error {
	srv, err := server.NewFromConfig(cfg, append([]server.Option{server.WithLogger(a.log)}, opts...)...)
	if err != nil {
		return err
	}
	return srv.Run(ctx, a.Handler())()
}
