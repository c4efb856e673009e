// Package main is the entry point for wordgrid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/samdwyer/wordgrid/internal/board"
	"github.com/samdwyer/wordgrid/internal/config"
	"github.com/samdwyer/wordgrid/internal/game"
	"github.com/samdwyer/wordgrid/internal/telemetry"
	"github.com/samdwyer/wordgrid/internal/ui"
	"github.com/samdwyer/wordgrid/internal/words"
)

func main() {
	// Loads .env as well; a missing file is fine
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv(cfg)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(flushCtx); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	src, err := newSource(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}

	if err := run(ctx, cfg, src, logger); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Game error: %v", err)
	}
}

// run owns the terminal for the lifetime of the game.
func run(ctx context.Context, cfg config.Config, src words.Source, logger zerolog.Logger) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	b := board.New(cfg.MaxRows, board.DefaultCols)
	renderer := ui.NewRenderer(screen, b.Rows(), b.Cols())
	ctrl := game.New(b, src, renderer, cfg.Game(), game.WithLogger(logger))

	events := make(chan game.Event, 16)
	go ui.ReadInput(screen, renderer, events)

	logger.Info().
		Str("source", cfg.WordSource).
		Int("rows", b.Rows()).
		Msg("wordgrid started")
	return ctrl.Run(ctx, events)
}

// newSource builds the configured word source behind a lookup cache.
func newSource(cfg config.Config, logger zerolog.Logger) (words.Source, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	switch cfg.WordSource {
	case config.SourceAPI:
		api := words.NewAPISource(cfg.API(), words.WithLogger(logger.With().Str("component", "words").Logger()))
		return words.NewCachedSource(api), nil
	default:
		list, err := words.LoadListSource(cfg.AnswersFile, cfg.AllowedFile, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		answers, allowed := list.Stats()
		logger.Debug().Int("answers", answers).Int("allowed", allowed).Int64("seed", seed).Msg("word lists loaded")
		return words.NewCachedSource(list), nil
	}
}

// newLogger writes structured logs to a file; the terminal belongs to the game.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := zerolog.New(w).Level(cfg.Level()).With().Timestamp().Logger()
	return logger, closeFn, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg config.Config) {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded reference, so build the header here
	if cfg.HoneycombKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombKey, cfg.HoneycombDataset))
	}
}
