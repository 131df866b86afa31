// Package logger builds slog loggers for the engine and provides attribute
// helpers with nil-safe zero values.
//
// Create a logger from options or from the environment-backed Config:
//
//	log := logger.New(
//		logger.WithDevelopment("joor"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg, logger.WithMode("production"))
//
// WithMode picks level and format for a run mode; LOG_LEVEL and LOG_FORMAT
// override it when set.
//
// A disabled logger discards every record, which keeps call sites free of
// enablement checks.
//
// Attribute helpers return an empty slog.Attr for empty input, so they can be
// passed unconditionally:
//
//	log.ErrorContext(ctx, "handler failed",
//		logger.Method(r.Method),
//		logger.Route(pattern),
//		logger.Error(err),
//	)
package logger
