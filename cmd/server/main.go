package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/rotaviva/voucher-api/internal/adapter"
	"github.com/rotaviva/voucher-api/internal/config"
	httphandler "github.com/rotaviva/voucher-api/internal/handler/http"
	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/ratelimit"
	"github.com/rotaviva/voucher-api/internal/server"
	"github.com/rotaviva/voucher-api/internal/service"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/workers"
	"github.com/rotaviva/voucher-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// janitorInterval is how often the background sweep drops expired
// rate-limiter windows.
const janitorInterval = 5 * time.Minute

func main() {
	printBuildInfo()

	// a missing .env file is fine; real deployments set env vars directly
	_ = godotenv.Load()

	log := logger.NewLogger("voucher-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	objects := adapter.NewObjectStore(cfg.Storage.Objects, log)
	services := service.NewServices(storages, objects, cfg, log)

	loginLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)
	publicLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.PublicLimit, cfg.RateLimit.PublicWindow)

	janitor := workers.NewRateLimitJanitor(ctx, janitorInterval, log, loginLimiter, publicLimiter)
	workers.NewWorkers(janitor).Run()

	handler := httphandler.NewHandler(services, db, loginLimiter, publicLimiter, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
