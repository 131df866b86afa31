package response

import (
	"maps"
	"net/http"

	"github.com/joorhq/joor/core/cookie"
)

// Response accumulates everything a handler wants to send.
// It is not safe for concurrent use; a chain builds it on one goroutine.
type Response struct {
	status  *int
	message *string

	data    any
	hasData bool
	err     any
	hasErr  bool

	dataType DataType
	headers  map[string]string
	cookies  []cookie.Cookie

	filePath string
	isFile   bool
	stream   bool
	download bool
	socket   SocketHandler
}

// New returns an empty builder with raw data type.
func New() *Response {
	return &Response{dataType: DataRaw}
}

// SetStatus sets the status code. Values outside the HTTP range are kept as is.
func (r *Response) SetStatus(status int) *Response {
	r.status = &status
	return r
}

// SetMessage sets the response message. It becomes the body when no data is set.
func (r *Response) SetMessage(message string) *Response {
	r.message = &message
	return r
}

// SetData sets a raw body. Strings and byte slices pass through untouched,
// other values are encoded as JSON at preparation.
func (r *Response) SetData(data any) *Response {
	r.data = data
	r.hasData = true
	r.dataType = DataRaw
	return r
}

// SetJSON sets data to be encoded as JSON.
func (r *Response) SetJSON(data any) *Response {
	r.data = data
	r.hasData = true
	r.dataType = DataJSON
	return r
}

// SetError sets the error payload: a string, an ErrorDetail or any value
// that encodes to JSON. An error value is reduced to its message.
func (r *Response) SetError(v any) *Response {
	if e, ok := v.(error); ok {
		v = e.Error()
	}
	r.err = v
	r.hasErr = true
	r.dataType = DataError
	return r
}

// SetHeader sets a single header. The key is canonicalized.
func (r *Response) SetHeader(key, value string) *Response {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[http.CanonicalHeaderKey(key)] = value
	return r
}

// SetHeaders merges headers into the builder, or replaces them all when
// override is true.
func (r *Response) SetHeaders(headers map[string]string, override bool) *Response {
	if override {
		r.headers = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		r.SetHeader(k, v)
	}
	return r
}

// SetCookie adds a cookie, replacing an earlier one with the same name in place.
func (r *Response) SetCookie(name, value string, opts ...cookie.Option) *Response {
	return r.SetCookies(cookie.New(name, value, opts...))
}

// SetCookies adds cookies in order.
func (r *Response) SetCookies(cookies ...cookie.Cookie) *Response {
	for _, c := range cookies {
		replaced := false
		for i := range r.cookies {
			if r.cookies[i].Name == c.Name {
				r.cookies[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			r.cookies = append(r.cookies, c)
		}
	}
	return r
}

// SendAsFile marks the response as the file at path.
func (r *Response) SendAsFile(path string) *Response {
	r.isFile = true
	r.filePath = path
	return r
}

// SendAsStream streams the file in chunks instead of serving it whole.
// It has no effect without SendAsFile.
func (r *Response) SendAsStream() *Response {
	r.stream = true
	return r
}

// SendAsDownload forces an attachment disposition for the file.
func (r *Response) SendAsDownload() *Response {
	r.download = true
	return r
}

// SendAsSocket upgrades the connection to a WebSocket and runs fn.
func (r *Response) SendAsSocket(fn SocketHandler) *Response {
	r.socket = fn
	return r
}

// Headers returns a copy of the headers set so far.
func (r *Response) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// Text creates a raw response.
func Text(status int, body string) *Response {
	return New().SetStatus(status).SetData(body)
}

// JSON creates a JSON response.
func JSON(status int, v any) *Response {
	return New().SetStatus(status).SetJSON(v)
}

// Fail creates an error response.
func Fail(status int, v any) *Response {
	return New().SetStatus(status).SetError(v)
}

// NotFound creates the 404 response used for unmatched routes.
func NotFound() *Response {
	return New().SetStatus(http.StatusNotFound).SetMessage(http.StatusText(http.StatusNotFound))
}

// InternalServerError creates a 500 response that exposes no detail.
func InternalServerError() *Response {
	return New().SetStatus(http.StatusInternalServerError).SetMessage(http.StatusText(http.StatusInternalServerError))
}
