package jrror

// Registration codes.
const (
	CodeRouteEmpty         = "route-empty"
	CodeRouteInvalid       = "route-invalid"
	CodePathInvalid        = "path-invalid"
	CodeRouteConflict      = "route-conflict"
	CodeRouteDuplicate     = "route-duplicate"
	CodeRouteHandlersEmpty = "route-handlers-empty"
	CodeMethodInvalid      = "method-invalid"
	CodeTableSealed        = "route-table-sealed"
)

// Dispatch codes.
const (
	CodeHandlerReturnUndefined = "handler-return-undefined"
	CodeHandlerFailed          = "handler-failed"
	CodeHandlerPanic           = "handler-panic"
	CodeRequestCanceled        = "request-canceled"
)

// Response codes.
const (
	CodeResponseDataConflict = "response-data-conflict"
	CodeResponseEncodeFailed = "response-encode-failed"
)

// Startup codes.
const (
	CodeConfigInvalid = "config-invalid"
	CodeConfigLoad    = "config-load-failed"
)
