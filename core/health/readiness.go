// Package health provides liveness and readiness handlers for probes.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Readiness runs every check concurrently. It answers "READY" when all
// pass and 503 when any fails.
//
//	app.Get("/health/ready", health.Readiness(log, db.Ping, cache.Ping))
func Readiness(log *slog.Logger, checks ...Check) handler.Func {
	if log == nil {
		log = logger.Discard()
	}

	return func(req *request.Request) (*response.Response, error) {
		g, ctx := errgroup.WithContext(req.Context())
		for _, check := range checks {
			check := check
			g.Go(func() error { return check(ctx) })
		}
		if err := g.Wait(); err != nil {
			log.ErrorContext(req.Context(), "readiness check failed", logger.Error(err))
			return response.Fail(http.StatusServiceUnavailable, "service unavailable"), nil
		}
		return response.Text(http.StatusOK, "READY"), nil
	}
}
