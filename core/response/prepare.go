package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/joorhq/joor/core/jrror"
)

// Content types inferred by Prepare.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

const headerContentType = "Content-Type"

// Prepared is the wire form of a response. The transport owns it after
// preparation.
type Prepared struct {
	Status   int
	Message  string
	Headers  map[string]string
	Body     []byte
	Cookies  []string
	Transfer Transfer
	FilePath string
	Download bool
	Socket   SocketHandler

	// Issues lists what preparation found questionable. Warn issues leave
	// the response intact; error issues mean it was replaced by a 500.
	Issues []*jrror.Jrror
}

// Header returns the prepared headers as an http.Header.
func (p *Prepared) Header() http.Header {
	h := make(http.Header, len(p.Headers))
	for k, v := range p.Headers {
		h.Set(k, v)
	}
	return h
}

// Prepare converts r into its wire form. It never mutates r, so preparing
// the same builder twice yields equal results.
func Prepare(r *Response, kind Kind) *Prepared {
	if r == nil {
		r = New()
	}

	var issues []*jrror.Jrror

	dataType := r.dataType
	if r.hasErr {
		if r.hasData {
			issues = append(issues, jrror.New(jrror.CodeResponseDataConflict,
				"both data and error were set, the error is sent", jrror.TypeWarn))
		}
		dataType = DataError
	}

	status := http.StatusOK
	switch {
	case r.status != nil:
		status = *r.status
	case dataType == DataError:
		status = http.StatusInternalServerError
	}

	message := resolveMessage(r.message, status, dataType)

	p := &Prepared{
		Status:   status,
		Message:  message,
		Headers:  make(map[string]string, len(r.headers)+2),
		Transfer: TransferNone,
	}
	maps.Copy(p.Headers, r.headers)

	for _, c := range r.cookies {
		if line := c.String(); line != "" {
			p.Cookies = append(p.Cookies, line)
		}
	}

	switch {
	case r.socket != nil:
		p.Transfer = TransferSocket
		p.Socket = r.socket
		p.Issues = issues
		return p
	case r.isFile:
		p.Transfer = TransferFile
		if r.stream {
			p.Transfer = TransferStream
		}
		p.FilePath = r.filePath
		p.Download = r.download
		setDefault(p.Headers, "Content-Disposition", contentDisposition(r.filePath, r.download))
		setDefault(p.Headers, headerContentType, fileContentType(r.filePath))
		p.Issues = issues
		return p
	}

	body, contentType, err := encodeBody(r, dataType, message, kind)
	if err != nil {
		issues = append(issues, jrror.Wrap(err, jrror.CodeResponseEncodeFailed,
			"response body could not be encoded", jrror.TypeError))
		failed := encodeFailure()
		failed.Issues = issues
		return failed
	}

	if bodyAllowed(status) {
		p.Body = body
		setDefault(p.Headers, headerContentType, contentType)
	}
	p.Issues = issues
	return p
}

func resolveMessage(message *string, status int, dataType DataType) string {
	if message != nil {
		return *message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	if dataType == DataError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return http.StatusText(http.StatusOK)
}

// encodeBody runs user code (MarshalJSON, String), so a panic there is
// turned into an encode error.
func encodeBody(r *Response, dataType DataType, message string, kind Kind) (body []byte, contentType string, err error) {
	defer func() {
		if v := recover(); v != nil {
			body, contentType = nil, ""
			err = fmt.Errorf("panic while encoding response body: %v", v)
		}
	}()

	switch dataType {
	case DataError:
		var payload any = message
		if r.err != nil {
			payload = r.err
		}
		b, err := marshal(struct {
			Message string `json:"message"`
			Data    any    `json:"data"`
		}{Message: message, Data: payload})
		return b, ContentTypeJSON, err

	case DataJSON:
		var payload any = message
		if r.hasData && r.data != nil {
			payload = r.data
		}
		b, err := marshal(payload)
		return b, ContentTypeJSON, err
	}

	textType := ContentTypeText
	if kind == KindWeb {
		textType = ContentTypeHTML
	}

	if !r.hasData || r.data == nil {
		return []byte(message), textType, nil
	}

	switch v := r.data.(type) {
	case string:
		return []byte(v), textType, nil
	case []byte:
		return slices.Clone(v), textType, nil
	case fmt.Stringer:
		return []byte(v.String()), textType, nil
	default:
		b, err := marshal(v)
		return b, ContentTypeJSON, err
	}
}

// marshal encodes v like JSON.stringify: no HTML escaping, no trailing newline.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeFailure() *Prepared {
	msg := http.StatusText(http.StatusInternalServerError)
	return &Prepared{
		Status:   http.StatusInternalServerError,
		Message:  msg,
		Headers:  map[string]string{headerContentType: ContentTypeText},
		Body:     []byte(msg),
		Transfer: TransferNone,
	}
}

func setDefault(h map[string]string, key, value string) {
	if _, ok := h[key]; !ok && value != "" {
		h[key] = value
	}
}

// bodyAllowed reports whether status permits a body (RFC 9110).
func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status < 200:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
