// Command joor runs a demo application on the joor engine and inspects its
// route table.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Version information populated at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(&options{}).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
