package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
	"github.com/joorhq/joor/middleware"
)

func newRequest(method, target string, body io.Reader) *request.Request {
	return request.New(httptest.NewRequest(method, target, body), nil)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("replaces_client_value", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodGet, "/", nil)
		req.Raw().Header.Set(request.HeaderRequestID, "client")

		res, err := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return "generated" },
		})(req)
		require.NoError(t, err)
		assert.Nil(t, res)
		assert.Equal(t, "generated", req.ID())

		id, ok := middleware.GetRequestID(req)
		assert.True(t, ok)
		assert.Equal(t, "generated", id)
	})

	t.Run("keeps_existing_when_asked", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodGet, "/", nil)
		req.Raw().Header.Set("X-Trace-ID", "trace-1")

		_, err := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			HeaderName:  "X-Trace-ID",
			UseExisting: true,
		})(req)
		require.NoError(t, err)
		assert.Equal(t, "trace-1", req.ID())
	})

	t.Run("default_generator", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodGet, "/", nil)
		_, err := middleware.RequestID()(req)
		require.NoError(t, err)

		id, ok := middleware.GetRequestID(req)
		assert.True(t, ok)
		assert.Len(t, id, 36)
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodGet, "/health", nil)
		_, err := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(req *request.Request) bool { return req.Path() == "/health" },
		})(req)
		require.NoError(t, err)

		_, ok := middleware.GetRequestID(req)
		assert.False(t, ok)
	})
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	t.Run("declared_length_over_limit", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodPost, "/", strings.NewReader("0123456789"))

		res, err := middleware.BodyLimit(4)(req)
		require.NoError(t, err)
		require.NotNil(t, res)

		p := response.Prepare(res, response.KindAPI)
		assert.Equal(t, http.StatusRequestEntityTooLarge, p.Status)
		assert.Contains(t, string(p.Body), "body-too-large")
	})

	t.Run("within_limit", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodPost, "/", strings.NewReader("0123"))

		res, err := middleware.BodyLimit(4)(req)
		require.NoError(t, err)
		assert.Nil(t, res)

		body, err := io.ReadAll(req.Raw().Body)
		require.NoError(t, err)
		assert.Equal(t, "0123", string(body))
	})

	t.Run("undeclared_length_is_capped", func(t *testing.T) {
		t.Parallel()
		raw := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(strings.NewReader("0123456789")))
		raw.ContentLength = -1
		req := request.New(raw, nil)

		res, err := middleware.BodyLimit(4)(req)
		require.NoError(t, err)
		assert.Nil(t, res)

		_, err = io.ReadAll(req.Raw().Body)
		assert.ErrorContains(t, err, "exceeds limit of 4 bytes")
	})

	t.Run("content_type_override", func(t *testing.T) {
		t.Parallel()
		req := newRequest(http.MethodPost, "/", strings.NewReader("0123456789"))
		req.Raw().Header.Set("Content-Type", "multipart/form-data; boundary=x")

		res, err := middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
			MaxSize:          4,
			ContentTypeLimit: map[string]int64{"multipart/form-data": middleware.KB},
		})(req)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	req := newRequest(http.MethodGet, "/users?page=2", nil)
	req.Raw().Header.Set("Authorization", "Bearer secret")
	req.SetID("req-1")

	res, err := middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger:     log,
		LogHeaders: true,
	})(req)
	require.NoError(t, err)
	assert.Nil(t, res)

	out := buf.String()
	assert.Contains(t, out, `msg="request received"`)
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/users")
	assert.Contains(t, out, `query="page=2"`)
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "secret")
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		Skip:   func(*request.Request) bool { return true },
	})(newRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestStatic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.svg"), []byte("<svg/>"), 0o600))

	tests := []struct {
		name     string
		cfg      middleware.StaticConfig
		method   string
		path     string
		status   int
		transfer response.Transfer
		file     string
		download bool
	}{
		{
			name:     "serves_file",
			cfg:      middleware.StaticConfig{RoutePath: "/public", Folder: dir},
			path:     "/public/app.css",
			status:   http.StatusOK,
			transfer: response.TransferFile,
			file:     filepath.Join(dir, "app.css"),
		},
		{
			name:     "nested_stream",
			cfg:      middleware.StaticConfig{RoutePath: "/public/", Folder: dir, Stream: true},
			path:     "/public/img/logo.svg",
			status:   http.StatusOK,
			transfer: response.TransferStream,
			file:     filepath.Join(dir, "img", "logo.svg"),
		},
		{
			name:     "download",
			cfg:      middleware.StaticConfig{RoutePath: "/public", Folder: dir, Download: true},
			path:     "/public/app.css",
			status:   http.StatusOK,
			transfer: response.TransferFile,
			file:     filepath.Join(dir, "app.css"),
			download: true,
		},
		{
			name:     "root_prefix",
			cfg:      middleware.StaticConfig{RoutePath: "/", Folder: dir},
			path:     "/app.css",
			status:   http.StatusOK,
			transfer: response.TransferFile,
			file:     filepath.Join(dir, "app.css"),
		},
		{
			name:   "outside_prefix",
			cfg:    middleware.StaticConfig{RoutePath: "/public", Folder: dir},
			path:   "/publicity/app.css",
			status: http.StatusNotFound,
		},
		{
			name:   "missing_file",
			cfg:    middleware.StaticConfig{RoutePath: "/public", Folder: dir},
			path:   "/public/nope.css",
			status: http.StatusNotFound,
		},
		{
			name:   "directory",
			cfg:    middleware.StaticConfig{RoutePath: "/public", Folder: dir},
			path:   "/public/img",
			status: http.StatusNotFound,
		},
		{
			name:   "traversal",
			cfg:    middleware.StaticConfig{RoutePath: "/public", Folder: filepath.Join(dir, "img")},
			path:   "/public/../../app.css",
			status: http.StatusNotFound,
		},
		{
			name:   "post",
			cfg:    middleware.StaticConfig{RoutePath: "/public", Folder: dir},
			method: http.MethodPost,
			path:   "/public/app.css",
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			raw := httptest.NewRequest(method, "/", nil)
			raw.URL.Path = tt.path

			res, err := middleware.Static(tt.cfg)(request.New(raw, nil))
			require.NoError(t, err)
			require.NotNil(t, res)

			p := response.Prepare(res, response.KindWeb)
			assert.Equal(t, tt.status, p.Status)
			if tt.status != http.StatusOK {
				assert.Equal(t, response.TransferNone, p.Transfer)
				return
			}
			assert.Equal(t, tt.transfer, p.Transfer)
			assert.Equal(t, tt.file, p.FilePath)
			assert.Equal(t, tt.download, p.Download)
		})
	}
}

func TestCORSOptions(t *testing.T) {
	t.Parallel()

	opts := middleware.DefaultCORSOptions()
	assert.True(t, opts.AllowsAnyOrigin())
	assert.Empty(t, opts.Validate())

	opts.AllowsCookies = true
	opts.MaxAge = -1
	assert.Len(t, opts.Validate(), 2)

	opts = middleware.CORSOptions{Origins: []string{"https://example.com"}, AllowsCookies: true}
	assert.False(t, opts.AllowsAnyOrigin())
	assert.Empty(t, opts.Validate())
	assert.True(t, opts.AllowsOrigin("https://EXAMPLE.com"))
	assert.False(t, opts.AllowsOrigin("https://evil.example"))
	assert.True(t, middleware.DefaultCORSOptions().AllowsOrigin("https://any.example"))
}
