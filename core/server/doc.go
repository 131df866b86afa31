// Package server runs an http.Handler with production timeouts, optional TLS
// and graceful shutdown. It is the listener collaborator of the joor
// dispatcher.
//
// Basic usage:
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(10*time.Second),
//		server.WithLogger(log),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, app.Handler()))
//	if err := g.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// From environment configuration:
//
//	cfg := server.DefaultConfig()
//	cfg.TLSMode = server.TLSModeFiles
//	cfg.TLSCertFile, cfg.TLSKeyFile = "cert.pem", "key.pem"
//	srv, err := server.NewFromConfig(cfg)
//
// Start binds the listener before serving, so Addr reports the real address
// when configured with port 0, and Ready is closed once binding succeeded.
package server
