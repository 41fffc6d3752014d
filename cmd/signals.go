package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// signalContext is cancelled by the first interrupt or termination signal.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
