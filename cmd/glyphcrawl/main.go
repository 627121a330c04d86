// Package main is the entry point for glyphcrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/glyphcrawl/internal/config"
	"github.com/samdwyer/glyphcrawl/internal/game"
	"github.com/samdwyer/glyphcrawl/internal/gamedata"
	"github.com/samdwyer/glyphcrawl/internal/logging"
	"github.com/samdwyer/glyphcrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development (GLYPHCRAWL_* and OTEL_* variables)
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			return
		}
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.WithError(err).Warn("telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	registry, err := gamedata.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	params, err := cfg.Dungeon.Params()
	if err != nil {
		log.Fatalf("Invalid dungeon config: %v", err)
	}
	opts := game.Options{
		Params:  params,
		Enemies: cfg.Game.Enemies,
		Seed:    cfg.Seed,
	}

	if cfg.Dump {
		session, err := game.NewSession(ctx, opts, registry, logger)
		if err != nil {
			log.Fatalf("Failed to generate dungeon: %v", err)
		}
		fmt.Print(session.String())
		fmt.Printf("seed %d, %d rooms, %d corridors\n",
			session.Seed, len(session.Dungeon.Rooms), len(session.Dungeon.Connections))
		return
	}

	g, err := game.New(opts, registry, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	fmt.Printf("seed %d\n", g.Seed())
}

// setupOTelEnv maps the Honeycomb variables onto the standard OTEL_* ones
// unless an endpoint has already been configured.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GLYPHCRAWL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GLYPHCRAWL_DATASET")
	if dataset == "" {
		dataset = "glyphcrawl"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
