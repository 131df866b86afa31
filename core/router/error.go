package router

import (
	"fmt"

	"github.com/joorhq/joor/core/jrror"
)

const docsPath = "/routing"

// Registration errors. Returned errors carry request-specific messages and
// match these sentinels with errors.Is.
var (
	ErrRouteEmpty         = jrror.New(jrror.CodeRouteEmpty, "route path is empty", jrror.TypeError)
	ErrRouteInvalid       = jrror.New(jrror.CodeRouteInvalid, "route path is invalid", jrror.TypeError)
	ErrPathInvalid        = jrror.New(jrror.CodePathInvalid, "middleware path is invalid", jrror.TypeError)
	ErrRouteConflict      = jrror.New(jrror.CodeRouteConflict, "dynamic segments conflict", jrror.TypeError)
	ErrRouteDuplicate     = jrror.New(jrror.CodeRouteDuplicate, "route already registered", jrror.TypeError)
	ErrRouteHandlersEmpty = jrror.New(jrror.CodeRouteHandlersEmpty, "route has no handlers", jrror.TypeError)
	ErrMethodInvalid      = jrror.New(jrror.CodeMethodInvalid, "method is not supported", jrror.TypeError)
	ErrTableSealed        = jrror.New(jrror.CodeTableSealed, "route table is sealed", jrror.TypeError)
)

func newError(sentinel *jrror.Jrror, format string, args ...any) *jrror.Jrror {
	return jrror.New(sentinel.Code, fmt.Sprintf(format, args...), jrror.TypeError, jrror.WithDocsPath(docsPath))
}
