package middleware

import (
	"github.com/google/uuid"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// requestIDKey stores the assigned ID in request values.
type requestIDKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *request.Request) bool
	// Generator creates new IDs. Default: UUID v4.
	Generator func() string
	// HeaderName is read when UseExisting is set. Default: X-Request-ID.
	HeaderName string
	// UseExisting keeps an ID supplied by the client.
	UseExisting bool
}

// RequestID assigns a fresh ID to every request, ignoring client-supplied
// values. The transport echoes it in the X-Request-ID response header.
func RequestID() handler.Func {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with cfg.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Func {
	if cfg.HeaderName == "" {
		cfg.HeaderName = request.HeaderRequestID
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(req *request.Request) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil, nil
		}

		var id string
		if cfg.UseExisting {
			id = req.Header(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		req.SetID(id)
		req.SetValue(requestIDKey{}, id)
		return nil, nil
	}
}

// GetRequestID returns the ID assigned by the middleware.
func GetRequestID(req *request.Request) (string, bool) {
	id, ok := req.Value(requestIDKey{}).(string)
	return id, ok
}
