package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joorhq/joor/core/dispatch"
	"github.com/joorhq/joor/core/jrror"
	"github.com/joorhq/joor/core/logger"
	"github.com/joorhq/joor/core/server"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Example: `  joor serve
  joor serve --port 9000 --static ./public
  joor serve --config ./deploy/joor.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			log := logger.NewFromConfig(cfg.Logger,
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithMode(string(cfg.Mode)),
				logger.WithAttr(logger.Key("version", version)),
			)
			logger.SetAsDefault(log)

			if err := cfg.Validate(); err != nil {
				if j, ok := jrror.As(err); ok {
					j.Handle(ctx, log)
				}
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			app, err := newApp(cfg, opts, log, dispatch.NewMetrics(dispatch.WithRegistry(reg)))
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
			mux.Handle("/", app.Handler())

			srv, err := server.NewFromConfig(cfg.ServerConfig(), server.WithLogger(log))
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(srv.Run(gctx, mux))
			return g.Wait()
		},
	}
}
