package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joorhq/joor/core/logger"
)

func newRoutesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the registered endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			app, err := newApp(cfg, opts, logger.Discard(), nil)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tKIND\tMIDDLEWARES\tHANDLERS")
			for _, r := range app.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", r.Method, r.Pattern, r.Kind, r.Middlewares, r.Handlers)
			}
			return w.Flush()
		},
	}
}
