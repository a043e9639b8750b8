package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eximroyals/backend/internal/config"
	"github.com/eximroyals/backend/internal/database"
	"github.com/eximroyals/backend/internal/handler"
	"github.com/eximroyals/backend/internal/logger"
	"github.com/eximroyals/backend/internal/repository"
	"github.com/eximroyals/backend/internal/router"
	"github.com/eximroyals/backend/internal/server"
	"github.com/eximroyals/backend/internal/service"
)

const (
	DefaultContextTimeout = 30
	migrationTimeout      = 2 * time.Minute
	seedTimeout           = 30 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), migrationTimeout)
	if err := database.Migrate(migrateCtx, &log, cfg); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	cancelMigrate()

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), seedTimeout)
	if err := services.Seeder.Seed(seedCtx); err != nil {
		cancelSeed()
		log.Fatal().Err(err).Msg("failed to seed database")
	}
	cancelSeed()

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
