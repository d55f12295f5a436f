// Package main is the entry point for Shinobi Duel.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/shinobiduel/internal/game"
	"github.com/samdwyer/shinobiduel/internal/telemetry"
	"github.com/samdwyer/shinobiduel/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_SHINOBIDUEL_API_KEY and SHINOBIDUEL_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := run(ctx, g); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Seed was %d", g.Seed())
}

// run owns the terminal for the lifetime of the game loop.
func run(ctx context.Context, g *game.Game) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := ui.NewTerminal(screen)
	term.Listen(ctx)
	return g.Run(ctx, term)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here.
	apiKey := os.Getenv("HONEYCOMB_SHINOBIDUEL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SHINOBIDUEL_DATASET")
	if dataset == "" {
		dataset = telemetry.ServiceName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
