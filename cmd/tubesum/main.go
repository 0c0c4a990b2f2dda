package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/patrickprogramme/tubesum/internal/app"
)

// version est remplacée au build : -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var r reportedError
		if !errors.As(err, &r) {
			// erreurs d'usage (flags, arguments) non encore affichées
			fmt.Fprintln(os.Stderr, app.FailureMessage(err))
		}
		os.Exit(1)
	}
}
