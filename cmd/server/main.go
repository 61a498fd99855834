package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"example.com/bullscows/internal/app"
	"example.com/bullscows/internal/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := cfg.NewLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("app init failed", "err", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
