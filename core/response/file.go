package response

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// DefaultFileContentType is used when the extension has no registered type.
const DefaultFileContentType = "text/plain"

// ServeFile creates a response that serves the file inline.
func ServeFile(path string) *Response {
	return New().SendAsFile(path)
}

// Stream creates a response that streams the file inline.
func Stream(path string) *Response {
	return New().SendAsFile(path).SendAsStream()
}

// Download creates a response that sends the file as an attachment.
func Download(path string) *Response {
	return New().SendAsFile(path).SendAsDownload()
}

// Socket creates a WebSocket response.
func Socket(fn SocketHandler) *Response {
	return New().SendAsSocket(fn)
}

// fileContentType maps the file extension to a MIME type.
func fileContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return DefaultFileContentType
}

// contentDisposition builds an inline or attachment disposition for the
// base name of path.
func contentDisposition(path string, download bool) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		name = "file"
	}
	// Prevent header injection through newlines and quotes.
	name = strings.NewReplacer("\n", "", "\r", "", `"`, "'").Replace(name)

	kind := "inline"
	if download {
		kind = "attachment"
	}
	return fmt.Sprintf(`%s; filename="%s"`, kind, name)
}
