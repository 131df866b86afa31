package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/joorhq/joor"
	"github.com/joorhq/joor/core/config"
	"github.com/joorhq/joor/core/dispatch"
	"github.com/joorhq/joor/core/health"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
	"github.com/joorhq/joor/middleware"
)

// newApp registers the demo routes. metrics may be nil.
func newApp(cfg config.App, opts *options, log *slog.Logger, metrics *dispatch.Metrics) (*joor.App, error) {
	app := joor.New(
		joor.WithLogger(log),
		joor.WithMetrics(metrics),
		joor.WithUpgrader(upgrader(cfg)),
	)

	err := app.Use("/*",
		middleware.RequestID(),
		middleware.LoggingWithConfig(middleware.LoggingConfig{Logger: log, LogLevel: slog.LevelDebug}),
		middleware.BodyLimit(middleware.DefaultBodyLimit),
	)
	if err != nil {
		return nil, err
	}

	app.Get("/health/live", health.Liveness)
	app.Get("/health/ready", health.Readiness(log))
	app.Get("/hello/:name", greet)
	app.Get("/ws/echo", echo)

	if opts.static != "" {
		app.Static(middleware.StaticConfig{RoutePath: "/public", Folder: opts.static})
	}
	return app, nil
}

// upgrader accepts same-host requests and origins allowed by the CORS
// options.
func upgrader(cfg config.App) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  cfg.Socket.ReadBufferSize,
		WriteBufferSize: cfg.Socket.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cfg.CORS.AllowsOrigin(origin)
		},
	}
}

func greet(req *request.Request) (*response.Response, error) {
	return response.JSON(http.StatusOK, map[string]string{
		"message":    "hello " + req.Param("name"),
		"request_id": req.ID(),
	}), nil
}

func echo(*request.Request) (*response.Response, error) {
	return response.Socket(func(_ context.Context, conn *websocket.Conn) error {
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}
				return err
			}
			if err := conn.WriteMessage(mt, msg); err != nil {
				if errors.Is(err, websocket.ErrCloseSent) {
					return nil
				}
				return err
			}
		}
	}), nil
}
