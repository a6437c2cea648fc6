package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/siteforge/siteforge-api/docs"
	"github.com/siteforge/siteforge-api/internal/api"
	"github.com/siteforge/siteforge-api/internal/infrastructure/config"
	mongodb "github.com/siteforge/siteforge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/siteforge/siteforge-api/internal/infrastructure/db/redis"
	"github.com/siteforge/siteforge-api/internal/infrastructure/generator"
	"github.com/siteforge/siteforge-api/pkg/logger"
)

// @title           siteforge API
// @version         1.0
// @description     AI-assisted website builder with role-based access control.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	gen := generator.NewGeminiClient(generator.Config{
		BaseURL: cfg.Generator.BaseURL,
		Model:   cfg.Generator.Model,
		APIKey:  cfg.Generator.APIKey,
		Timeout: time.Duration(cfg.Generator.TimeoutSeconds) * time.Second,
	}, log)

	e := api.NewRouter(db, rdb, gen, api.RouterConfig{
		JWTSecret:         cfg.JWTSecret,
		TokenTTL:          time.Duration(cfg.TokenTTL) * time.Second,
		BcryptCost:        cfg.BcryptCost,
		GenerationTimeout: time.Duration(cfg.Generator.TimeoutSeconds) * time.Second,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("shutdown complete")
}
