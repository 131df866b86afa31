package router

import (
	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/response"
)

// entry is the per-method slot of a node.
type entry struct {
	pattern     string
	kind        response.Kind
	middlewares []handler.Func
	handlers    []handler.Func
}

type node struct {
	// param is the bound name when this node was reached through a dynamic segment.
	param   string
	static  map[string]*node
	dynamic *node
	entries map[string]*entry

	// local applies to this node only, subtree to this node and its descendants.
	local   []handler.Func
	subtree []handler.Func
}

func newNode() *node {
	return &node{}
}

// child returns the child for seg, creating it when missing.
// A dynamic segment whose name differs from the existing dynamic child
// is rejected.
func (n *node) child(seg segment) (*node, bool) {
	if seg.dynamic {
		if n.dynamic != nil {
			return n.dynamic, n.dynamic.param == seg.value
		}
		n.dynamic = &node{param: seg.value}
		return n.dynamic, true
	}

	if c, ok := n.static[seg.value]; ok {
		return c, true
	}
	if n.static == nil {
		n.static = make(map[string]*node)
	}
	c := newNode()
	n.static[seg.value] = c
	return c, true
}

// walk visits every node depth first.
func (n *node) walk(fn func(*node)) {
	fn(n)
	for _, c := range n.static {
		c.walk(fn)
	}
	if n.dynamic != nil {
		n.dynamic.walk(fn)
	}
}
