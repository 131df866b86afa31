package middleware

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// Size units for body limits.
const (
	KB int64 = 1024
	MB       = 1024 * KB
	GB       = 1024 * MB
)

// DefaultBodyLimit applies when BodyLimitConfig.MaxSize is not set.
const DefaultBodyLimit = 4 * MB

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	Skip func(req *request.Request) bool

	// MaxSize is the limit in bytes. Default: 4MB.
	MaxSize int64

	// ContentTypeLimit overrides MaxSize per media type,
	// e.g. {"multipart/form-data": 10 * MB}.
	ContentTypeLimit map[string]int64
}

// BodyLimit rejects bodies larger than maxSize.
func BodyLimit(maxSize int64) handler.Func {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig rejects requests whose declared Content-Length is over
// the limit with 413, and caps the body reader for the rest of the chain.
func BodyLimitWithConfig(cfg BodyLimitConfig) handler.Func {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultBodyLimit
	}

	return func(req *request.Request) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(req) {
			return nil, nil
		}

		limit := cfg.MaxSize
		if cfg.ContentTypeLimit != nil {
			if mediaType, _, err := mime.ParseMediaType(req.Header("Content-Type")); err == nil {
				if l, ok := cfg.ContentTypeLimit[mediaType]; ok {
					limit = l
				}
			}
		}

		raw := req.Raw()
		if raw.ContentLength > limit {
			return response.Fail(http.StatusRequestEntityTooLarge, response.ErrorDetail{
				Code: "body-too-large",
				Message: fmt.Sprintf("request body too large: %s, maximum allowed: %s",
					formatBytes(raw.ContentLength), formatBytes(limit)),
				Data: map[string]int64{"limit": limit, "size": raw.ContentLength},
			}), nil
		}

		if raw.Body != nil && raw.Body != http.NoBody {
			raw.Body = &limitedReader{reader: raw.Body, limit: limit}
		}
		return nil, nil
	}
}

// limitedReader fails once more than limit bytes were read.
type limitedReader struct {
	reader io.ReadCloser
	limit  int64
	read   int64
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if lr.read >= lr.limit {
		// Probe for one more byte to tell EOF from overflow.
		var probe [1]byte
		n, err := lr.reader.Read(probe[:])
		if n == 0 {
			return 0, err
		}
		return 0, fmt.Errorf("request body exceeds limit of %d bytes", lr.limit)
	}

	if remaining := lr.limit - lr.read; int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := lr.reader.Read(p)
	lr.read += int64(n)
	return n, err
}

func (lr *limitedReader) Close() error {
	return lr.reader.Close()
}

func formatBytes(n int64) string {
	switch {
	case n >= GB:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
