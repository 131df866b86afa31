package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server address is required")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to bind listener")
	ErrShutdown             = errors.New("server shutdown error")
	ErrTLSFiles             = errors.New("TLS mode requires both certificate and key files")
	ErrTLSMode              = errors.New("unknown TLS mode")
	ErrFailedLoadCert       = errors.New("failed to load certificate")
)
