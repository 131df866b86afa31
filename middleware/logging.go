package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	Skip func(req *request.Request) bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// LogLevel defaults to slog.LevelInfo.
	LogLevel slog.Level

	// LogHeaders adds the request headers, redacting SensitiveHeaders.
	LogHeaders bool

	// SensitiveHeaders are canonical header names logged as [REDACTED].
	SensitiveHeaders []string

	// Component name for structured logging. Default: "http".
	Component string
}

// Logging logs every request that reaches it at info level.
func Logging() handler.Func {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger logs requests to log.
func LoggingWithLogger(log *slog.Logger) handler.Func {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs the incoming request and defers to the next entry.
// Completion is logged by the transport, which knows the final status.
func LoggingWithConfig(cfg LoggingConfig) handler.Func {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"X-Api-Key",
			"X-Auth-Token",
			"X-Csrf-Token",
		}
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(req *request.Request) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil, nil
		}

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Method(req.Method()),
			logger.Path(req.Path()),
			logger.ClientIP(req.IP()),
			logger.RequestID(req.ID()),
		}
		if q := req.Raw().URL.RawQuery; q != "" {
			attrs = append(attrs, slog.String("query", q))
		}
		if cfg.LogHeaders {
			attrs = append(attrs, slog.Any("request_headers", redact(req.Headers(), cfg.SensitiveHeaders)))
		}

		cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "request received", attrs...)
		return nil, nil
	}
}

func redact(h http.Header, sensitive []string) map[string]any {
	out := make(map[string]any, len(h))
	for key, values := range h {
		switch {
		case slices.Contains(sensitive, key):
			out[key] = "[REDACTED]"
		case len(values) == 1:
			out[key] = values[0]
		default:
			out[key] = values
		}
	}
	return out
}
