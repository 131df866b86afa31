// Package response provides the chainable response builder and the pure
// preparation step that turns a builder into its wire form.
//
// Handlers build a Response with fluent setters. No setter fails; anything
// questionable is reported by Prepare as an issue on the Prepared value.
//
//	return response.New().
//		SetStatus(http.StatusCreated).
//		SetJSON(user).
//		SetCookie("session", token, cookie.WithHTTPOnly(true)), nil
//
// Prepare resolves status, message, body, headers and cookies:
//
//	p := response.Prepare(res, response.KindAPI)
//	// p.Status, p.Headers["Content-Type"], p.Body, p.Cookies
//
// Content-Type is inferred only when the builder did not set one: JSON for
// json and error data, text/html for raw data on web routes and text/plain
// for raw data on API routes.
//
// File intents (SendAsFile, SendAsStream, SendAsDownload) and the socket
// intent only set header hints and a transfer mode. The transport reads the
// file or upgrades the connection.
package response
