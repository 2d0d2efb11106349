package main

import (
	"context"
	"os/signal"
	"syscall"

	"ccdist/internal/cli"
)

func main() {
	// Interrupts cancel the context so in-flight downloads abort and the
	// temporary workspace cleanup in deferred closers still runs.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
