package health

import (
	"net/http"

	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// Liveness indicates the process is running. Always returns "ALIVE" with
// 200 OK. No dependency checks.
//
//	app.Get("/health/live", health.Liveness)
func Liveness(*request.Request) (*response.Response, error) {
	return response.Text(http.StatusOK, "ALIVE"), nil
}

// NoContent returns 204 without a body. Suits high-frequency checks.
func NoContent(*request.Request) (*response.Response, error) {
	return response.New().SetStatus(http.StatusNoContent), nil
}
