package logger

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Config is the environment-backed logging configuration. An empty Level or
// Format keeps what the options chose.
type Config struct {
	Enabled bool   `env:"LOG_ENABLED" envDefault:"true"`
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Service string `env:"LOG_SERVICE" envDefault:"joor"`
}

type options struct {
	level    slog.Level
	json     bool
	output   io.Writer
	attrs    []slog.Attr
	disabled bool
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches the output to JSON.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithOutput sets the destination writer. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithDisabled discards every record.
func WithDisabled() Option {
	return func(o *options) {
		o.disabled = true
	}
}

// WithMode applies the preset for a run mode and tags records with it:
// text at debug for development, JSON at debug for staging, JSON at info
// for production. Other modes only add the tag.
func WithMode(mode string) Option {
	return func(o *options) {
		switch mode {
		case "development":
			o.level, o.json = slog.LevelDebug, false
		case "staging":
			o.level, o.json = slog.LevelDebug, true
		case "production":
			o.level, o.json = slog.LevelInfo, true
		}
		if mode != "" {
			o.attrs = append(o.attrs, slog.String("env", mode))
		}
	}
}

// WithDevelopment is WithMode("development") plus a service attribute.
func WithDevelopment(service string) Option {
	return withService("development", service)
}

// WithStaging is WithMode("staging") plus a service attribute.
func WithStaging(service string) Option {
	return withService("staging", service)
}

// WithProduction is WithMode("production") plus a service attribute.
func WithProduction(service string) Option {
	return withService("production", service)
}

func withService(mode, service string) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, slog.String("service", service))
		WithMode(mode)(o)
	}
}

// New creates a logger. Without options it writes text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.disabled {
		return Discard()
	}

	hopts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, hopts)
	} else {
		h = slog.NewTextHandler(o.output, hopts)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(h)
}

// NewFromConfig creates a logger from cfg. opts are applied first, so a
// non-empty Level or Format overrides a WithMode preset.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	if !cfg.Enabled {
		return Discard()
	}

	all := slices.Clone(opts)
	if cfg.Level != "" {
		all = append(all, WithLevel(ParseLevel(cfg.Level)))
	}
	if cfg.Format != "" {
		json := strings.EqualFold(cfg.Format, "json")
		all = append(all, func(o *options) { o.json = json })
	}
	if cfg.Service != "" {
		all = append(all, WithAttr(slog.String("service", cfg.Service)))
	}

	return New(all...)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	if l != nil {
		slog.SetDefault(l)
	}
}
