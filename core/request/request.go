// Package request wraps the transport request with the fields the engine
// populates: path params, parsed query, client IP and request ID.
package request

import (
	"context"
	"maps"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/joorhq/joor/pkg/clientip"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// Request is the value handed to every handler in a chain.
// Params, query, IP and ID are fixed at construction.
type Request struct {
	raw    *http.Request
	params map[string]string
	query  map[string]string
	ip     string
	id     string

	mu     sync.RWMutex
	values map[any]any
}

// New wraps r with the captured params. The incoming X-Request-ID header is
// reused when present, otherwise a UUID is generated.
func New(r *http.Request, params map[string]string) *Request {
	p := make(map[string]string, len(params))
	maps.Copy(p, params)

	q := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			q[k] = v[0]
		}
	}

	id := r.Header.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}

	return &Request{
		raw:    r,
		params: p,
		query:  q,
		ip:     clientip.GetIP(r),
		id:     id,
	}
}

// Raw returns the underlying transport request.
func (r *Request) Raw() *http.Request { return r.raw }

// Context returns the request context.
func (r *Request) Context() context.Context { return r.raw.Context() }

// Method returns the HTTP method.
func (r *Request) Method() string { return r.raw.Method }

// Path returns the URL path.
func (r *Request) Path() string { return r.raw.URL.Path }

// Param returns a captured path parameter or "".
func (r *Request) Param(name string) string { return r.params[name] }

// Params returns a copy of the captured path parameters.
func (r *Request) Params() map[string]string { return maps.Clone(r.params) }

// Query returns the first value of a query parameter or "".
func (r *Request) Query(name string) string { return r.query[name] }

// QueryParams returns a copy of the parsed query.
func (r *Request) QueryParams() map[string]string { return maps.Clone(r.query) }

// Header returns the first value of a request header.
func (r *Request) Header(name string) string { return r.raw.Header.Get(name) }

// Headers returns a copy of the request headers.
func (r *Request) Headers() http.Header { return r.raw.Header.Clone() }

// Cookie returns the value of a request cookie.
func (r *Request) Cookie(name string) (string, bool) {
	c, err := r.raw.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// IP returns the client IP.
func (r *Request) IP() string { return r.ip }

// ID returns the request ID.
func (r *Request) ID() string { return r.id }

// SetValue stores a request-scoped value. Middlewares use it to hand data
// to later entries of the same chain.
func (r *Request) SetValue(key, val any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = make(map[any]any)
	}
	r.values[key] = val
}

// Value returns a value stored with SetValue.
func (r *Request) Value(key any) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key]
}

// SetID replaces the request ID.
func (r *Request) SetID(id string) {
	if id != "" {
		r.id = id
	}
}
