// Package handler defines the single callable type used for both middlewares
// and route handlers.
//
// A Func returns (nil, nil) to defer to the next entry of the chain, a
// response to end the chain, or an error for an unexpected failure:
//
//	func requireAuth(req *request.Request) (*response.Response, error) {
//		if req.Header("Authorization") == "" {
//			return response.Fail(http.StatusUnauthorized, "missing token"), nil
//		}
//		return nil, nil
//	}
package handler
