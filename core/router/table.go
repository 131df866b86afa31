package router

import (
	"net/http"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/response"
)

// Methods lists the methods accepted by Register.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// View is the read-only side of a sealed table.
type View interface {
	Match(method, path string) (*Match, bool)
	Routes() []RouteInfo
}

// RouteInfo describes a registered endpoint.
type RouteInfo struct {
	Method      string
	Pattern     string
	Kind        response.Kind
	Middlewares int
	Handlers    int
}

// Table is the route table. Register and Use are not safe for concurrent
// use; call them before Seal.
type Table struct {
	root   *node
	sealed atomic.Bool
}

// New creates an empty table with a root node for "/".
func New() *Table {
	return &Table{root: newNode()}
}

// Register binds middlewares and handlers to method and path.
func (t *Table) Register(method, path string, middlewares, handlers []handler.Func, opts ...RouteOption) error {
	if t.sealed.Load() {
		return newError(ErrTableSealed, "cannot register %s %s after the table was sealed", method, path)
	}

	method = strings.ToUpper(strings.TrimSpace(method))
	if !slices.Contains(Methods, method) {
		return newError(ErrMethodInvalid, "method %q is not one of %s", method, strings.Join(Methods, ", "))
	}
	if path == "" {
		return newError(ErrRouteEmpty, "route path cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return newError(ErrRouteInvalid, "route path %q must start with \"/\"", path)
	}
	if len(handlers) == 0 {
		return newError(ErrRouteHandlersEmpty, "route %s %s needs at least one handler", method, path)
	}

	segs, ok := parseSegments(splitPath(path))
	if !ok {
		return newError(ErrRouteInvalid, "route path %q has a malformed segment", path)
	}

	n, err := t.descend(path, segs)
	if err != nil {
		return err
	}

	if n.entries == nil {
		n.entries = make(map[string]*entry)
	}
	if _, exists := n.entries[method]; exists {
		return newError(ErrRouteDuplicate, "route %s %s is already registered", method, patternOf(segs))
	}

	e := &entry{
		pattern:     patternOf(segs),
		kind:        response.KindAPI,
		middlewares: slices.Clone(middlewares),
		handlers:    slices.Clone(handlers),
	}
	for _, opt := range opts {
		opt(e)
	}
	n.entries[method] = e

	return nil
}

// Use binds middlewares that run for every method. An empty path means "/".
// A trailing "*" segment binds them to the whole subtree.
func (t *Table) Use(path string, middlewares ...handler.Func) error {
	if t.sealed.Load() {
		return newError(ErrTableSealed, "cannot add middlewares to %s after the table was sealed", path)
	}

	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	parts := splitPath(path)
	subtree := false
	if len(parts) > 0 && parts[len(parts)-1] == wildcard {
		subtree = true
		parts = parts[:len(parts)-1]
	}

	segs, ok := parseSegments(parts)
	if !ok {
		return newError(ErrPathInvalid, "middleware path %q has a malformed segment", path)
	}

	n, err := t.descend(path, segs)
	if err != nil {
		return err
	}

	if subtree {
		n.subtree = append(n.subtree, middlewares...)
	} else {
		n.local = append(n.local, middlewares...)
	}
	return nil
}

// descend walks segs from the root, creating missing nodes.
func (t *Table) descend(path string, segs []segment) (*node, error) {
	n := t.root
	for _, seg := range segs {
		next, ok := n.child(seg)
		if !ok {
			return nil, newError(ErrRouteConflict, "%q declares [%s] where [%s] is already registered", path, seg.value, next.param)
		}
		n = next
	}
	return n, nil
}

// Seal ends the registration phase. It is idempotent.
func (t *Table) Seal() View {
	t.sealed.Store(true)
	return t
}

// Sealed reports whether Seal was called.
func (t *Table) Sealed() bool {
	return t.sealed.Load()
}

// Routes lists registered endpoints ordered by pattern, then by method.
func (t *Table) Routes() []RouteInfo {
	var out []RouteInfo
	t.root.walk(func(n *node) {
		for method, e := range n.entries {
			out = append(out, RouteInfo{
				Method:      method,
				Pattern:     e.pattern,
				Kind:        e.kind,
				Middlewares: len(e.middlewares),
				Handlers:    len(e.handlers),
			})
		}
	})

	slices.SortFunc(out, func(a, b RouteInfo) int {
		if c := strings.Compare(a.Pattern, b.Pattern); c != 0 {
			return c
		}
		return slices.Index(Methods, a.Method) - slices.Index(Methods, b.Method)
	})
	return out
}
