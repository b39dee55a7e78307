// Package main starts the FitForge API server
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitforge/api/internal/infrastructure/container"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	if *configPath == "" {
		*configPath = os.Getenv("FITFORGE_CONFIG")
	}

	app := container.New(*configPath)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
