package jrror

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joorhq/joor/core/logger"
)

// Type classifies a signal and selects its handling policy.
type Type string

const (
	TypeWarn  Type = "warn"
	TypeError Type = "error"
	TypePanic Type = "panic"
)

// DocsBaseURL is the prefix of every documentation link.
const DocsBaseURL = "https://joor.xyz/docs/latest"

// exit terminates the process for panic-typed signals.
var exit = os.Exit

// Jrror is a structured, classified error.
type Jrror struct {
	Code     string
	Message  string
	Type     Type
	DocsPath string

	cause error
}

// Option configures a Jrror at construction.
type Option func(*Jrror)

// WithDocsPath attaches a documentation path such as "/routing".
func WithDocsPath(path string) Option {
	return func(j *Jrror) {
		j.DocsPath = path
	}
}

// New creates a signal. An unknown type falls back to TypeError.
func New(code, message string, typ Type, opts ...Option) *Jrror {
	switch typ {
	case TypeWarn, TypeError, TypePanic:
	default:
		typ = TypeError
	}

	j := &Jrror{
		Code:    code,
		Message: message,
		Type:    typ,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Wrap creates a signal that keeps err as its cause.
func Wrap(err error, code, message string, typ Type, opts ...Option) *Jrror {
	j := New(code, message, typ, opts...)
	j.cause = err
	return j
}

// As extracts the first Jrror in err's chain.
func As(err error) (*Jrror, bool) {
	var j *Jrror
	if errors.As(err, &j) {
		return j, true
	}
	return nil, false
}

// Error implements the error interface.
func (j *Jrror) Error() string {
	if j.Message == "" {
		return j.Code
	}
	return j.Code + ": " + j.Message
}

// Unwrap returns the underlying cause, if any.
func (j *Jrror) Unwrap() error {
	return j.cause
}

// Is reports whether target is a Jrror with the same code.
func (j *Jrror) Is(target error) bool {
	t, ok := target.(*Jrror)
	if !ok {
		return false
	}
	return t.Code == j.Code
}

// DocsURL returns the documentation link for the signal, or an empty string
// when no docs path is set.
func (j *Jrror) DocsURL() string {
	if j.DocsPath == "" {
		return ""
	}
	return DocsBaseURL + j.DocsPath + "?error=" + j.Code
}

// Handle applies the fixed policy for the signal's type. Extra attrs are
// appended to the log record. A panic-typed signal exits the process after
// logging.
func (j *Jrror) Handle(ctx context.Context, log *slog.Logger, extra ...slog.Attr) {
	if log == nil {
		log = slog.Default()
	}

	attrs := []any{
		logger.ErrorCode(j.Code),
		logger.Type(string(j.Type)),
		logger.Error(j.cause),
		logger.DocsURL(j.DocsURL()),
	}
	for _, a := range extra {
		attrs = append(attrs, a)
	}

	switch j.Type {
	case TypeWarn:
		log.WarnContext(ctx, j.Message, attrs...)
	case TypePanic:
		log.ErrorContext(ctx, j.Message, append(attrs, logger.Stack())...)
		exit(1)
	default:
		log.ErrorContext(ctx, j.Message, attrs...)
	}
}

// Downgrade returns a copy of the signal whose panic type is lowered to
// error. Used where exiting the process is never acceptable.
func (j *Jrror) Downgrade() *Jrror {
	if j.Type != TypePanic {
		return j
	}
	c := *j
	c.Type = TypeError
	return &c
}
