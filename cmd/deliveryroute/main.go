// Command deliveryroute asks for a road map on standard input and prints the
// shortest delivery route from a restaurant to a customer.
//
// Configuration comes from the environment: LOG_LEVEL, LOG_FORMAT,
// LOG_INCLUDE_CALLER, ROUTE_MAX_VERTICES, ROUTE_PATH_SEPARATOR and
// ROUTE_ZERO_AS_ABSENT. Logs go to standard error.
//
// Exit status is 0 when a route, or the absence of one, was reported and 1
// when the input or configuration was rejected.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/deliveryroute/internal/config"
	"github.com/katalvlaran/deliveryroute/internal/logging"
	"github.com/katalvlaran/deliveryroute/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, os.Stderr)

	_, err = session.Run(ctx, os.Stdin, os.Stdout,
		session.WithLogger(logger),
		session.WithMaxVertices(cfg.Route.MaxVertices),
		session.WithSeparator(cfg.Route.PathSeparator),
		session.WithZeroAsAbsent(cfg.Route.ZeroAsAbsent),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		stop()
		os.Exit(1)
	}
}
