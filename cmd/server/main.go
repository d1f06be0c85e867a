package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/multirole/auth-api/internal/api"
	"github.com/multirole/auth-api/internal/core/service"
	"github.com/multirole/auth-api/internal/infrastructure/config"
	mongoinfra "github.com/multirole/auth-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/multirole/auth-api/internal/infrastructure/db/redis"
	"github.com/multirole/auth-api/internal/infrastructure/queue"
	"github.com/multirole/auth-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Core wiring ---
	userRepo := mongoinfra.NewUserRepository(db)
	auditWriter := queue.NewAsyncAuditWriter(mongoinfra.NewAuditRepository(db), 0, log)
	auditWriter.Start(ctx)

	recorder := service.NewAuditService(auditWriter, log)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer)
	authService := service.NewAuthService(userRepo, hasher, recorder)

	e := api.NewRouter(api.Deps{
		Users:    userRepo,
		Audit:    auditWriter,
		Auth:     authService,
		Tokens:   tokens,
		Recorder: recorder,
		Mongo:    db,
		Redis:    rdb,
		Config:   cfg,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
