package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"tariff_tracker/internal/config"
	httpGateway "tariff_tracker/internal/gateways/http"
	"tariff_tracker/internal/lib/sl"
	"tariff_tracker/internal/listing"
	tariffRepository "tariff_tracker/internal/repository/tariff/postgres"
	"tariff_tracker/internal/storage/db"
	usecaseInternal "tariff_tracker/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	log := setupLogger(cfg.Env)

	log.Info("starting tariff tracker", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	loc, err := cfg.Tariffs.Location()
	if err != nil {
		log.Error("failed to load timezone", sl.Err(err), slog.String("timezone", cfg.Tariffs.Timezone))
		os.Exit(1)
	}

	rules, err := config.LoadListingRules(cfg.Listing.RulesPath)
	if err != nil {
		log.Error("failed to load listing rules", sl.Err(err), slog.String("path", cfg.Listing.RulesPath))
		os.Exit(1)
	}
	filter, err := listing.NewFilter(rules)
	if err != nil {
		log.Error("failed to init listing filter", sl.Err(err))
		os.Exit(1)
	}

	// connects on first query
	database := db.New(db.BuildDSN(cfg.Pg), db.WithLogger(log))
	defer func() {
		if err := database.Close(context.Background()); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}()

	tr := tariffRepository.NewTariffRepository(database)

	useCases := httpGateway.UseCases{
		Tariffs: usecaseInternal.NewTariffs(tr, usecaseInternal.WithLocation(loc)),
		Listing: filter,
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)))
	if err := server.Run(ctx); err != nil {
		log.Error("server stopped", sl.Err(err))
		return
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return log
}
