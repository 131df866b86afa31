package dispatch

import (
	"bufio"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// Plain bodies written by the transport for file intents it cannot serve.
const (
	msgFilePathMissing = "File path is missing"
	msgFileNotFound    = "File not found"
)

// responseWriter tracks whether and with which status a response was written.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the written status, or 0 before the first write.
func (w *responseWriter) Status() int {
	return w.status
}

// Flush implements http.Flusher when the underlying writer does.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack implements http.Hijacker for WebSocket upgrades.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("dispatch: response writer does not support hijacking")
	}
	w.written = true
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// ServeHTTP dispatches r and writes the prepared response. When the request
// context is already done the write is skipped.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	o := d.dispatch(r.Context(), r.Method, r.URL.Path, r)

	if err := r.Context().Err(); err != nil {
		d.log.DebugContext(r.Context(), "client gone, response dropped",
			logger.Error(err),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.RequestID(o.req.ID()),
		)
		return
	}

	rw := newResponseWriter(w)
	rw.Header().Set(request.HeaderRequestID, o.req.ID())

	switch o.prepared.Transfer {
	case response.TransferSocket:
		d.serveSocket(rw, r, o)
	case response.TransferFile, response.TransferStream:
		d.serveFile(rw, r, o)
	default:
		d.writePrepared(rw, o.prepared)
	}

	d.log.DebugContext(r.Context(), "request served",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Route(o.route),
		logger.StatusCode(rw.Status()),
		logger.Transfer(string(o.prepared.Transfer)),
		logger.RequestID(o.req.ID()),
		logger.Latency(time.Since(start)),
	)
}

// writePrepared writes headers, cookies, status and body.
func (d *Dispatcher) writePrepared(rw *responseWriter, p *response.Prepared) {
	writeHeaders(rw, p)

	status := p.Status
	if status < 100 || status > 999 {
		d.log.Warn("status outside the HTTP range, sending 500", logger.StatusCode(status))
		status = http.StatusInternalServerError
	}
	rw.WriteHeader(status)

	if len(p.Body) > 0 {
		if _, err := rw.Write(p.Body); err != nil {
			d.log.Debug("response body write failed", logger.Error(err))
		}
	}
}

func writeHeaders(w http.ResponseWriter, p *response.Prepared) {
	h := w.Header()
	for k, v := range p.Headers {
		h.Set(k, v)
	}
	for _, c := range p.Cookies {
		h.Add("Set-Cookie", c)
	}
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", response.ContentTypeText)
	w.Header().Del("Content-Disposition")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// serveFile delivers file and stream intents. Range requests are always
// answered through http.ServeContent.
func (d *Dispatcher) serveFile(rw *responseWriter, r *http.Request, o outcome) {
	p := o.prepared
	if p.FilePath == "" {
		writePlain(rw, http.StatusBadRequest, msgFilePathMissing)
		return
	}

	f, err := os.Open(p.FilePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.log.WarnContext(r.Context(), "file open failed", logger.Error(err), logger.RequestID(o.req.ID()))
		}
		writePlain(rw, http.StatusNotFound, msgFileNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		writePlain(rw, http.StatusNotFound, msgFileNotFound)
		return
	}

	writeHeaders(rw, p)

	if p.Transfer == response.TransferFile || r.Header.Get("Range") != "" {
		http.ServeContent(rw, r, info.Name(), info.ModTime(), f)
		return
	}

	rw.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	rw.WriteHeader(http.StatusOK)
	if _, err := io.Copy(rw, f); err != nil {
		d.log.DebugContext(r.Context(), "file stream interrupted", logger.Error(err), logger.RequestID(o.req.ID()))
	}
}

// serveSocket upgrades the connection and runs the session handler until it
// returns.
func (d *Dispatcher) serveSocket(rw *responseWriter, r *http.Request, o outcome) {
	header := make(http.Header)
	header.Set(request.HeaderRequestID, o.req.ID())
	for _, c := range o.prepared.Cookies {
		header.Add("Set-Cookie", c)
	}

	conn, err := d.upgrader.Upgrade(rw, r, header)
	if err != nil {
		// The upgrader already answered with an HTTP error.
		d.log.DebugContext(r.Context(), "websocket upgrade failed", logger.Error(err), logger.RequestID(o.req.ID()))
		return
	}
	defer conn.Close()

	if err := o.prepared.Socket(r.Context(), conn); err != nil {
		d.log.ErrorContext(r.Context(), "websocket session failed",
			logger.Error(err),
			logger.Route(o.route),
			logger.RequestID(o.req.ID()),
		)
	}
}
