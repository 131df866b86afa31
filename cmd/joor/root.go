package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joorhq/joor/core/config"
)

// options are the flags shared by every command.
type options struct {
	configFile string
	host       string
	port       int
	static     string
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:          "joor",
		Short:        "Routing and response engine demo server",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default is ./joor.yaml when present)")
	pf.StringVar(&opts.host, "host", "", "listen host, overrides JOOR_HOST")
	pf.IntVar(&opts.port, "port", 0, "listen port, overrides JOOR_PORT")
	pf.StringVar(&opts.static, "static", "", "directory served under /public")

	root.AddCommand(
		newServeCmd(opts),
		newRoutesCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig builds the application config: environment first, then the
// optional YAML file, then flags that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (config.App, error) {
	var cfg config.App
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	// The cached value shares slice storage; decoding must not write into it.
	cfg.CORS.Origins = slices.Clone(cfg.CORS.Origins)
	cfg.CORS.Methods = slices.Clone(cfg.CORS.Methods)
	cfg.CORS.AllowedHeaders = slices.Clone(cfg.CORS.AllowedHeaders)

	v := viper.New()
	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	} else {
		v.SetConfigName("joor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.configFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config file %s: %w", v.ConfigFileUsed(), err)
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Server.Port = opts.port
	}
	return cfg, nil
}
