// Package router holds the route table: a segment tree keyed by path segment
// where every node may bind a dynamic parameter and carries, per HTTP method,
// an ordered list of middlewares and handlers.
//
// # Registration
//
// Routes are registered explicitly during startup:
//
//	t := router.New()
//	err := t.Register(http.MethodGet, "/users/[id]", []handler.Func{auth}, []handler.Func{getUser})
//
// Dynamic segments are written as [name] or :name. Registration fails with a
// *jrror.Jrror when the path is empty or does not start with "/", when two
// dynamic segments with different names compete for the same level, or when
// the method and path pair already exists.
//
// Middlewares not tied to a method are bound with Use. A trailing "*" binds
// the middleware to the node and every route below it; without it the
// middleware applies to the exact path only:
//
//	t.Use("/admin/*", requireAdmin) // /admin and everything below
//	t.Use("/health", skipAuth)      // /health only
//
// # Matching
//
// Matching walks the request path one segment at a time. A static child is
// always preferred over the dynamic child, and the walk never backtracks.
// The resulting chain is: subtree middlewares from the root down, local
// middlewares of the matched node, then the method's middlewares and
// handlers, all in registration order.
//
// # Sealing
//
// Seal ends the registration phase and returns a read-only View. After
// sealing every mutator returns ErrTableSealed, so the table can be shared
// by concurrent requests without locks.
package router
