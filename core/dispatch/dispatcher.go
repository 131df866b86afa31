package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/jrror"
	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
	"github.com/joorhq/joor/core/router"
)

const docsPath = "/handlers"

// Dispatcher turns requests into prepared responses using a sealed table.
// It is safe for concurrent use.
type Dispatcher struct {
	view     router.View
	log      *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	upgrader *websocket.Upgrader
	fallback handler.Func
}

// New creates a dispatcher over view.
func New(view router.View, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		view:   view,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(tracerName),
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  DefaultReadBufferSize,
			WriteBufferSize: DefaultWriteBufferSize,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// outcome is a prepared response together with the request that produced it.
type outcome struct {
	prepared *response.Prepared
	req      *request.Request
	route    string
}

// Dispatch resolves method and path and runs the matched chain. r provides
// headers, query and body to handlers; it may be nil for synthetic calls.
// The result is never nil.
func (d *Dispatcher) Dispatch(ctx context.Context, method, path string, r *http.Request) *response.Prepared {
	return d.dispatch(ctx, method, path, r).prepared
}

func (d *Dispatcher) dispatch(ctx context.Context, method, path string, r *http.Request) outcome {
	start := time.Now()
	method = strings.ToUpper(strings.TrimSpace(method))

	ctx, span := d.tracer.Start(ctx, "joor.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	if r == nil {
		r = &http.Request{
			Method: method,
			URL:    &url.URL{Path: path},
			Header: make(http.Header),
		}
	}
	r = r.WithContext(ctx)

	var o outcome
	m, ok := d.match(method, path)
	if ok {
		o.req = request.New(r, m.Params)
		o.route = m.Pattern
		o.prepared = d.run(ctx, o.req, m)
	} else {
		o.req = request.New(r, nil)
		o.prepared = d.miss(ctx, method, o.req)
	}

	span.SetAttributes(
		attribute.String("http.route", o.route),
		attribute.Int("http.response.status_code", o.prepared.Status),
		attribute.String("joor.request_id", o.req.ID()),
	)
	if o.prepared.Status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, o.prepared.Message)
	}

	d.metrics.observe(method, o.route, o.prepared.Status, time.Since(start))
	return o
}

func (d *Dispatcher) match(method, path string) (*router.Match, bool) {
	if method == "" || d.view == nil {
		return nil, false
	}
	return d.view.Match(method, path)
}

// miss answers an unmatched request: the fallback for GET, else 404.
func (d *Dispatcher) miss(ctx context.Context, method string, req *request.Request) *response.Prepared {
	notFound := response.Prepare(response.NotFound(), response.KindAPI)
	if d.fallback == nil || method != http.MethodGet {
		return notFound
	}

	res, err := call(d.fallback, req)
	if err != nil {
		d.fail(ctx, req, "", err)
		return notFound
	}
	if res == nil {
		return notFound
	}

	p := response.Prepare(res, response.KindAPI)
	d.handleIssues(ctx, req, "", p)
	if p.Status != http.StatusOK {
		return notFound
	}
	return p
}

// run executes the chain until an entry answers.
func (d *Dispatcher) run(ctx context.Context, req *request.Request, m *router.Match) *response.Prepared {
	for _, h := range m.Chain() {
		if err := ctx.Err(); err != nil {
			d.log.DebugContext(ctx, "request canceled, chain stopped",
				logger.ErrorCode(jrror.CodeRequestCanceled),
				logger.Error(err),
				logger.Route(m.Pattern),
				logger.RequestID(req.ID()),
			)
			return response.Prepare(response.New().SetStatus(http.StatusServiceUnavailable), m.Kind)
		}

		res, err := call(h, req)
		if err != nil {
			return d.fail(ctx, req, m.Pattern, err)
		}
		if res != nil {
			p := response.Prepare(res, m.Kind)
			d.handleIssues(ctx, req, m.Pattern, p)
			return p
		}
	}

	return d.fail(ctx, req, m.Pattern, jrror.New(
		jrror.CodeHandlerReturnUndefined,
		fmt.Sprintf("every entry of %s %s returned no response, at least one must answer", req.Method(), m.Pattern),
		jrror.TypeError,
		jrror.WithDocsPath(docsPath),
	))
}

// call runs h and turns a panic into a *panicError.
func call(h handler.Func, req *request.Request) (res *response.Response, err error) {
	defer func() {
		if v := recover(); v != nil {
			res = nil
			err = &panicError{value: v, stack: debug.Stack()}
		}
	}()
	return h(req)
}

// fail handles err as an Error Signal and returns a 500 with no detail.
func (d *Dispatcher) fail(ctx context.Context, req *request.Request, route string, err error) *response.Prepared {
	var (
		sig *jrror.Jrror
		pe  *panicError
	)
	switch {
	case errors.As(err, &pe):
		sig = jrror.Wrap(err, jrror.CodeHandlerPanic, "handler panicked", jrror.TypeError, jrror.WithDocsPath(docsPath))
	default:
		var ok bool
		if sig, ok = jrror.As(err); ok {
			sig = sig.Downgrade()
		} else {
			sig = jrror.Wrap(err, jrror.CodeHandlerFailed, "handler returned an error", jrror.TypeError, jrror.WithDocsPath(docsPath))
		}
	}

	sig.Handle(ctx, d.log, d.requestAttrs(req, route)...)
	d.metrics.chainError(route, sig.Code)

	return response.Prepare(response.InternalServerError(), response.KindAPI)
}

// handleIssues logs what preparation reported. Encode failures were
// already replaced by a 500.
func (d *Dispatcher) handleIssues(ctx context.Context, req *request.Request, route string, p *response.Prepared) {
	for _, issue := range p.Issues {
		issue.Downgrade().Handle(ctx, d.log, d.requestAttrs(req, route)...)
		if issue.Type != jrror.TypeWarn {
			d.metrics.chainError(route, issue.Code)
		}
	}
}

func (d *Dispatcher) requestAttrs(req *request.Request, route string) []slog.Attr {
	attrs := []slog.Attr{
		logger.Method(req.Method()),
		logger.Path(req.Path()),
		logger.Route(route),
		logger.RequestID(req.ID()),
	}
	if sc := trace.SpanContextFromContext(req.Context()); sc.HasTraceID() {
		attrs = append(attrs, logger.TraceID(sc.TraceID().String()))
	}
	return attrs
}
