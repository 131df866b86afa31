package router

import (
	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/response"
)

// Match is the result of a successful lookup.
type Match struct {
	Pattern string
	Kind    response.Kind
	// Params is never nil.
	Params map[string]string

	// Global holds the subtree middlewares collected from the root down,
	// followed by the matched node's local middlewares.
	Global      []handler.Func
	Middlewares []handler.Func
	Handlers    []handler.Func
}

// Chain returns the entries to execute, in order.
func (m *Match) Chain() []handler.Func {
	chain := make([]handler.Func, 0, len(m.Global)+len(m.Middlewares)+len(m.Handlers))
	chain = append(chain, m.Global...)
	chain = append(chain, m.Middlewares...)
	chain = append(chain, m.Handlers...)
	return chain
}

// Match resolves method and path. A static child always wins over the
// dynamic child and the walk does not backtrack. The method must already
// be uppercase.
func (t *Table) Match(method, path string) (*Match, bool) {
	n := t.root
	params := make(map[string]string)
	global := append([]handler.Func(nil), n.subtree...)

	for _, seg := range splitPath(path) {
		if next, ok := n.static[seg]; ok {
			n = next
		} else if n.dynamic != nil {
			n = n.dynamic
			params[n.param] = seg
		} else {
			return nil, false
		}
		global = append(global, n.subtree...)
	}

	e, ok := n.entries[method]
	if !ok {
		return nil, false
	}

	return &Match{
		Pattern:     e.pattern,
		Kind:        e.kind,
		Params:      params,
		Global:      append(global, n.local...),
		Middlewares: e.middlewares,
		Handlers:    e.handlers,
	}, true
}
