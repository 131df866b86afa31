package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/jrror"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
	"github.com/joorhq/joor/core/router"
)

// recorder builds handlers that append their name to calls.
type recorder struct {
	calls []string
}

func (r *recorder) mark(name string) handler.Func {
	return func(*request.Request) (*response.Response, error) {
		r.calls = append(r.calls, name)
		return nil, nil
	}
}

func (r *recorder) run(chain []handler.Func) []string {
	r.calls = nil
	req := request.New(httptest.NewRequest(http.MethodGet, "/", nil), nil)
	for _, h := range chain {
		_, _ = h(req)
	}
	return r.calls
}

func noop(*request.Request) (*response.Response, error) {
	return response.New(), nil
}

func handlers(h ...handler.Func) []handler.Func { return h }

func TestRegisterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*testing.T, *router.Table)
		method   string
		path     string
		handlers []handler.Func
		want     *jrror.Jrror
	}{
		{name: "empty_path", method: http.MethodGet, path: "", handlers: handlers(noop), want: router.ErrRouteEmpty},
		{name: "missing_leading_slash", method: http.MethodGet, path: "users", handlers: handlers(noop), want: router.ErrRouteInvalid},
		{name: "empty_param_name_brackets", method: http.MethodGet, path: "/users/[]", handlers: handlers(noop), want: router.ErrRouteInvalid},
		{name: "empty_param_name_colon", method: http.MethodGet, path: "/users/:", handlers: handlers(noop), want: router.ErrRouteInvalid},
		{name: "wildcard_segment", method: http.MethodGet, path: "/users/*", handlers: handlers(noop), want: router.ErrRouteInvalid},
		{name: "unsupported_method", method: "TRACE", path: "/users", handlers: handlers(noop), want: router.ErrMethodInvalid},
		{name: "no_handlers", method: http.MethodGet, path: "/users", want: router.ErrRouteHandlersEmpty},
		{
			name: "conflicting_dynamic_segment",
			setup: func(t *testing.T, tb *router.Table) {
				require.NoError(t, tb.Register(http.MethodGet, "/users/[id]", nil, handlers(noop)))
			},
			method: http.MethodGet, path: "/users/[slug]", handlers: handlers(noop), want: router.ErrRouteConflict,
		},
		{
			name: "conflict_across_syntaxes",
			setup: func(t *testing.T, tb *router.Table) {
				require.NoError(t, tb.Register(http.MethodGet, "/users/:id", nil, handlers(noop)))
			},
			method: http.MethodPost, path: "/users/[name]/posts", handlers: handlers(noop), want: router.ErrRouteConflict,
		},
		{
			name: "duplicate",
			setup: func(t *testing.T, tb *router.Table) {
				require.NoError(t, tb.Register(http.MethodGet, "/users", nil, handlers(noop)))
			},
			method: http.MethodGet, path: "/users", handlers: handlers(noop), want: router.ErrRouteDuplicate,
		},
		{
			name: "duplicate_after_normalization",
			setup: func(t *testing.T, tb *router.Table) {
				require.NoError(t, tb.Register(http.MethodGet, "/users/[id]", nil, handlers(noop)))
			},
			method: "get", path: "/users/:id/", handlers: handlers(noop), want: router.ErrRouteDuplicate,
		},
		{
			name: "sealed",
			setup: func(t *testing.T, tb *router.Table) {
				tb.Seal()
			},
			method: http.MethodGet, path: "/late", handlers: handlers(noop), want: router.ErrTableSealed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tb := router.New()
			if tt.setup != nil {
				tt.setup(t, tb)
			}

			err := tb.Register(tt.method, tt.path, nil, tt.handlers)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			j, ok := jrror.As(err)
			require.True(t, ok)
			assert.Equal(t, jrror.TypeError, j.Type)
			assert.Equal(t, "/routing", j.DocsPath)
		})
	}
}

func TestRegisterSameDynamicNameIsShared(t *testing.T) {
	t.Parallel()

	tb := router.New()
	require.NoError(t, tb.Register(http.MethodGet, "/users/[id]", nil, handlers(noop)))
	require.NoError(t, tb.Register(http.MethodDelete, "/users/:id", nil, handlers(noop)))
	require.NoError(t, tb.Register(http.MethodGet, "/users/[id]/posts", nil, handlers(noop)))
}

func TestRegisterSameStaticPathDifferentMethods(t *testing.T) {
	t.Parallel()

	tb := router.New()
	for _, m := range router.Methods {
		require.NoError(t, tb.Register(m, "/items", nil, handlers(noop)))
	}
	assert.Len(t, tb.Routes(), len(router.Methods))
}

func TestUse(t *testing.T) {
	t.Parallel()

	t.Run("local_applies_to_exact_path_only", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		tb := router.New()
		require.NoError(t, tb.Register(http.MethodGet, "/admin", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Register(http.MethodGet, "/admin/users", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Use("/admin", rec.mark("local")))

		m, ok := tb.Match(http.MethodGet, "/admin")
		require.True(t, ok)
		assert.Equal(t, []string{"local", "h"}, rec.run(m.Chain()))

		m, ok = tb.Match(http.MethodGet, "/admin/users")
		require.True(t, ok)
		assert.Equal(t, []string{"h"}, rec.run(m.Chain()))
	})

	t.Run("subtree_applies_to_descendants", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		tb := router.New()
		require.NoError(t, tb.Register(http.MethodGet, "/admin", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Register(http.MethodPost, "/admin/users/[id]", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Register(http.MethodGet, "/public", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Use("/admin/*", rec.mark("admin")))

		m, ok := tb.Match(http.MethodGet, "/admin")
		require.True(t, ok)
		assert.Equal(t, []string{"admin", "h"}, rec.run(m.Chain()))

		m, ok = tb.Match(http.MethodPost, "/admin/users/7")
		require.True(t, ok)
		assert.Equal(t, []string{"admin", "h"}, rec.run(m.Chain()))

		m, ok = tb.Match(http.MethodGet, "/public")
		require.True(t, ok)
		assert.Equal(t, []string{"h"}, rec.run(m.Chain()))
	})

	t.Run("path_defaults", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		tb := router.New()
		require.NoError(t, tb.Register(http.MethodGet, "/", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Register(http.MethodGet, "/docs", nil, handlers(rec.mark("h"))))
		require.NoError(t, tb.Use("", rec.mark("root")))
		require.NoError(t, tb.Use("docs", rec.mark("docs")))
		require.NoError(t, tb.Use("*", rec.mark("all")))

		m, ok := tb.Match(http.MethodGet, "/")
		require.True(t, ok)
		assert.Equal(t, []string{"all", "root", "h"}, rec.run(m.Chain()))

		m, ok = tb.Match(http.MethodGet, "/docs")
		require.True(t, ok)
		assert.Equal(t, []string{"all", "docs", "h"}, rec.run(m.Chain()))
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		tb := router.New()
		require.NoError(t, tb.Register(http.MethodGet, "/users/[id]", nil, handlers(noop)))

		assert.ErrorIs(t, tb.Use("/users/[name]/*", noop), router.ErrRouteConflict)
		assert.ErrorIs(t, tb.Use("/a/*/b", noop), router.ErrPathInvalid)
		assert.ErrorIs(t, tb.Use("/a/[]", noop), router.ErrPathInvalid)

		tb.Seal()
		assert.ErrorIs(t, tb.Use("/", noop), router.ErrTableSealed)
	})
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	tb := router.New()
	require.NoError(t, tb.Use("/*", rec.mark("root-subtree")))
	require.NoError(t, tb.Use("/api/*", rec.mark("api-subtree")))
	require.NoError(t, tb.Register(http.MethodGet, "/api/users/[id]", handlers(rec.mark("mw1"), rec.mark("mw2")), handlers(rec.mark("h1"), rec.mark("h2"))))
	require.NoError(t, tb.Use("/api/users/[id]", rec.mark("local")))
	require.NoError(t, tb.Use("/api/users/*", rec.mark("users-subtree")))

	m, ok := tb.Match(http.MethodGet, "/api/users/9")
	require.True(t, ok)

	assert.Equal(t, []string{
		"root-subtree",
		"api-subtree",
		"users-subtree",
		"local",
		"mw1",
		"mw2",
		"h1",
		"h2",
	}, rec.run(m.Chain()))
}

func TestSeal(t *testing.T) {
	t.Parallel()

	tb := router.New()
	require.NoError(t, tb.Register(http.MethodGet, "/users", nil, handlers(noop)))
	assert.False(t, tb.Sealed())

	view := tb.Seal()
	assert.True(t, tb.Sealed())
	assert.Equal(t, view, tb.Seal())

	_, ok := view.Match(http.MethodGet, "/users")
	assert.True(t, ok)
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	tb := router.New()
	require.NoError(t, tb.Register(http.MethodPost, "/users", handlers(noop), handlers(noop, noop)))
	require.NoError(t, tb.Register(http.MethodGet, "/users", nil, handlers(noop)))
	require.NoError(t, tb.Register(http.MethodGet, "/", nil, handlers(noop), router.AsWeb()))
	require.NoError(t, tb.Register(http.MethodDelete, "/users/[id]", nil, handlers(noop)))

	assert.Equal(t, []router.RouteInfo{
		{Method: http.MethodGet, Pattern: "/", Kind: response.KindWeb, Handlers: 1},
		{Method: http.MethodGet, Pattern: "/users", Kind: response.KindAPI, Handlers: 1},
		{Method: http.MethodPost, Pattern: "/users", Kind: response.KindAPI, Middlewares: 1, Handlers: 2},
		{Method: http.MethodDelete, Pattern: "/users/:id", Kind: response.KindAPI, Handlers: 1},
	}, tb.Routes())
}
