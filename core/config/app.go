package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joorhq/joor/core/jrror"
	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/server"
	"github.com/joorhq/joor/middleware"
)

const docsPath = "/config"

// Mode is the run mode of the application.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
	ModeTesting     Mode = "testing"
	ModeStaging     Mode = "staging"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeDevelopment, ModeProduction, ModeTesting, ModeStaging:
		return true
	}
	return false
}

// Server transport modes.
const (
	ServerModeHTTP = "http"
	ServerModeTLS  = "tls"
)

// Server is the listener configuration.
type Server struct {
	Host string `env:"JOOR_HOST" envDefault:"0.0.0.0" mapstructure:"host"`
	Port int    `env:"JOOR_PORT" envDefault:"8080" mapstructure:"port"`
	// Mode is "http" or "tls". TLS needs both Cert and Key.
	Mode string `env:"JOOR_SERVER_MODE" envDefault:"http" mapstructure:"mode"`
	Cert string `env:"JOOR_TLS_CERT" mapstructure:"cert"`
	Key  string `env:"JOOR_TLS_KEY" mapstructure:"key"`

	ReadTimeout     time.Duration `env:"JOOR_READ_TIMEOUT" envDefault:"15s" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `env:"JOOR_WRITE_TIMEOUT" envDefault:"15s" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `env:"JOOR_IDLE_TIMEOUT" envDefault:"60s" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `env:"JOOR_SHUTDOWN_TIMEOUT" envDefault:"30s" mapstructure:"shutdown_timeout"`
}

// Addr joins host and port.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Socket holds WebSocket upgrade settings.
type Socket struct {
	ReadBufferSize  int `env:"JOOR_SOCKET_READ_BUFFER" envDefault:"1024" mapstructure:"read_buffer_size"`
	WriteBufferSize int `env:"JOOR_SOCKET_WRITE_BUFFER" envDefault:"1024" mapstructure:"write_buffer_size"`
}

// App is the full application configuration.
type App struct {
	Mode   Mode                   `env:"JOOR_MODE" envDefault:"development" mapstructure:"mode"`
	Server Server                 `mapstructure:"server"`
	Logger logger.Config          `mapstructure:"logger"`
	Socket Socket                 `mapstructure:"socket"`
	CORS   middleware.CORSOptions `mapstructure:"cors"`
}

// Default returns the configuration produced by an empty environment.
func Default() App {
	return App{
		Mode: ModeDevelopment,
		Server: Server{
			Host:            "0.0.0.0",
			Port:            8080,
			Mode:            ServerModeHTTP,
			ReadTimeout:     server.DefaultReadTimeout,
			WriteTimeout:    server.DefaultWriteTimeout,
			IdleTimeout:     server.DefaultIdleTimeout,
			ShutdownTimeout: server.DefaultShutdownTimeout,
		},
		Logger: logger.Config{
			Enabled: true,
			Service: "joor",
		},
		Socket: Socket{ReadBufferSize: 1024, WriteBufferSize: 1024},
		CORS:   middleware.DefaultCORSOptions(),
	}
}

// Validate checks the configuration and returns a panic-typed config-invalid
// signal listing every problem, or nil.
func (a App) Validate() error {
	var problems []string

	if !a.Mode.Valid() {
		problems = append(problems, fmt.Sprintf("unknown mode %q", a.Mode))
	}
	if strings.TrimSpace(a.Server.Host) == "" {
		problems = append(problems, "server host is required")
	}
	if a.Server.Port < 1 || a.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server port %d is out of range", a.Server.Port))
	}
	switch a.Server.Mode {
	case ServerModeHTTP:
	case ServerModeTLS:
		if a.Server.Cert == "" || a.Server.Key == "" {
			problems = append(problems, "tls mode requires both cert and key")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown server mode %q", a.Server.Mode))
	}
	if a.Socket.ReadBufferSize < 0 || a.Socket.WriteBufferSize < 0 {
		problems = append(problems, "socket buffer sizes cannot be negative")
	}
	problems = append(problems, a.CORS.Validate()...)

	if len(problems) == 0 {
		return nil
	}
	return jrror.New(jrror.CodeConfigInvalid, strings.Join(problems, "; "), jrror.TypePanic,
		jrror.WithDocsPath(docsPath))
}

// ServerConfig converts the listener settings for core/server.
func (a App) ServerConfig() server.Config {
	cfg := server.Config{
		Addr:            a.Server.Addr(),
		ReadTimeout:     a.Server.ReadTimeout,
		WriteTimeout:    a.Server.WriteTimeout,
		IdleTimeout:     a.Server.IdleTimeout,
		ShutdownTimeout: a.Server.ShutdownTimeout,
		MaxHeaderBytes:  server.DefaultMaxHeaderBytes,
		TLSMode:         server.TLSModeOff,
	}
	if a.Server.Mode == ServerModeTLS {
		cfg.TLSMode = server.TLSModeFiles
		cfg.TLSCertFile = a.Server.Cert
		cfg.TLSKeyFile = a.Server.Key
	}
	return cfg
}
