// Package joor is an embeddable HTTP routing and response engine. Routes
// live in a static/dynamic segment tree with per-method chains of
// middlewares and handlers. A request runs through its chain until one
// entry answers, and the answer is prepared into a wire-ready response.
//
// # Package Organization
//
//	github.com/joorhq/joor                  - App: registration, dispatch and serving
//	github.com/joorhq/joor/core/router      - Route table, matcher and sealed View
//	github.com/joorhq/joor/core/dispatch    - Chain execution, http.Handler adapter, metrics, tracing
//	github.com/joorhq/joor/core/handler     - Handler type shared by middlewares and handlers
//	github.com/joorhq/joor/core/request     - Request wrapper with params, query, IP and ID
//	github.com/joorhq/joor/core/response    - Response builder and preparation into wire form
//	github.com/joorhq/joor/core/cookie      - Cookie shape and Set-Cookie serialization
//	github.com/joorhq/joor/core/jrror       - Classified error signals with docs links
//	github.com/joorhq/joor/core/config      - Cached typed env loading and the App config
//	github.com/joorhq/joor/core/logger      - slog construction and attribute helpers
//	github.com/joorhq/joor/core/server      - http.Server lifecycle with graceful shutdown
//	github.com/joorhq/joor/core/health      - Liveness and readiness handlers
//	github.com/joorhq/joor/middleware       - Request ID, logging, body limit, static files, CORS options
//	github.com/joorhq/joor/pkg/clientip     - Client IP extraction behind proxies
//
// # Usage
//
//	app := joor.New(joor.WithLogger(log))
//	if err := app.Use("/*", middleware.RequestID()); err != nil {
//		return err
//	}
//	app.Get("/users/:id", func(req *request.Request) (*response.Response, error) {
//		return response.JSON(http.StatusOK, map[string]string{"id": req.Param("id")}), nil
//	})
//	app.Static(middleware.StaticConfig{RoutePath: "/public", Folder: "./public"})
//
//	return app.Serve(ctx, server.DefaultConfig())
//
// A handler returning (nil, nil) defers to the next entry. A chain that ends
// without a response yields 500 and a handler-return-undefined signal.
// Registration helpers such as Get panic on invalid routes; Register and
// Use return the error instead.
package joor
