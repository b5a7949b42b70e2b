package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/superapp/tool-portal/internal/api"
	"github.com/superapp/tool-portal/internal/infrastructure/config"
	"github.com/superapp/tool-portal/internal/infrastructure/db/sqlite"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
	"github.com/superapp/tool-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})
	log.Info().Str("env", cfg.Env).Msg("starting tool portal")

	if cfg.Production() && cfg.SessionSecret == "dev-super-app-secret" {
		log.Warn().Msg("SESSION_SECRET is the development default; set a real secret")
	}

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog store")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := sqlite.Seed(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog store")
	}

	rdb, err := session.Connect(ctx, session.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to session store")
	}
	defer rdb.Close()

	sessions := session.NewManager(rdb, cfg.SessionSecret, cfg.SessionTTL)
	e := api.NewRouter(db, rdb, sessions, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
