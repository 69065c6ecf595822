// teeko prints the size of every stage of the state space and the winning
// masks, optionally verifying the index round trip stage by stage.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/domino14/teeko/config"
	"github.com/domino14/teeko/report"
)

func main() {
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:])
	if err != nil {
		panic(err)
	}

	var logger zerolog.Logger
	ll := cfg.GetString(config.ConfigLogLevel)
	switch ll {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	}
	logger = logger.With().Timestamp().Logger()
	logger.Debug().Msgf("Loaded config: %v", cfg.AllSettings())
	zerolog.DefaultContextLogger = &logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	r := report.Build()
	if err := r.Scan(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("scan failed")
	}
	if err := r.Write(os.Stdout, cfg.GetString(config.ConfigFormat)); err != nil {
		logger.Fatal().Err(err).Msg("writing report")
	}
}
