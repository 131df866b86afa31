package router

import "github.com/joorhq/joor/core/response"

// RouteOption configures a single registration.
type RouteOption func(*entry)

// AsWeb classifies the route as a web page: raw bodies default to text/html.
func AsWeb() RouteOption {
	return func(e *entry) {
		e.kind = response.KindWeb
	}
}

// AsAPI classifies the route as an API endpoint: raw bodies default to
// text/plain. This is the default.
func AsAPI() RouteOption {
	return func(e *entry) {
		e.kind = response.KindAPI
	}
}
