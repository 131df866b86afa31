// Package middleware provides handler.Func entries for common cross-cutting
// concerns: request IDs, request logging, body limits and static files, plus
// the CORSOptions shape carried by the application config.
//
// Middlewares follow the chain contract of core/handler: returning
// (nil, nil) defers to the next entry, returning a response ends the chain.
// They cannot post-process the response of later entries.
//
// Each middleware has a default constructor and a WithConfig variant whose
// config struct accepts a Skip predicate:
//
//	app.Use("/*",
//		middleware.RequestID(),
//		middleware.Logging(),
//		middleware.BodyLimit(2*middleware.MB),
//	)
//
//	app.Get("/users/:id", func(req *request.Request) (*response.Response, error) {
//		id, _ := middleware.GetRequestID(req)
//		return response.JSON(http.StatusOK, map[string]string{"request_id": id}), nil
//	})
//
// # Static files
//
// Static maps a URL prefix onto a directory. Missing files and directories
// yield 404, so it can be installed as the application fallback:
//
//	app.Static(middleware.StaticConfig{RoutePath: "/public", Folder: "./public"})
package middleware
