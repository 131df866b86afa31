package handler

import (
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// Func is a middleware or route handler.
type Func func(req *request.Request) (*response.Response, error)

// Static returns a Func that always answers with the response built by fn.
func Static(fn func() *response.Response) Func {
	return func(*request.Request) (*response.Response, error) {
		return fn(), nil
	}
}

// Next is a middleware that always defers.
func Next(*request.Request) (*response.Response, error) {
	return nil, nil
}
