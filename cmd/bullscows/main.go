// Command bullscows plays Bulls and Cows at the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"example.com/bullscows/internal/config"
	"example.com/bullscows/internal/console"
	"example.com/bullscows/internal/game"
)

func main() {
	cfg, err := config.LoadConsoleFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// stdout занят игрой
	logger := cfg.NewLogger(os.Stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed, err = game.NewSeed()
		if err != nil {
			logger.Error("seed", "err", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := console.New(os.Stdin, os.Stdout, game.NewRand(seed), console.WithLogger(logger))
	err = sh.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		// Ctrl-C: обычный выход, подсказка осталась без перевода строки
		fmt.Fprintln(os.Stdout)
	case err != nil:
		logger.Error("session aborted", "err", err)
		os.Exit(1)
	}
}
