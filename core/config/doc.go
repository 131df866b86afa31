// Package config loads typed configuration from environment variables with
// per-type caching.
//
// On first use the package reads the .env files of the current run mode
// (JOOR_MODE): .env.local in development, .env.<mode> otherwise, then the
// shared .env. Variables already present in the process are never replaced.
// Struct fields are parsed with caarlos0/env tags:
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		return err
//	}
//
// Each type is parsed once; later calls copy the cached value. MustLoad
// panics instead of returning the error and suits program startup.
//
// App is the engine's own configuration. Validate returns a panic-typed
// config-invalid signal, so handling it terminates the process:
//
//	var cfg config.App
//	config.MustLoad(&cfg)
//	if err := cfg.Validate(); err != nil {
//		if j, ok := jrror.As(err); ok {
//			j.Handle(ctx, log)
//		}
//	}
package config
