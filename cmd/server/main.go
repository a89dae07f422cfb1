package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/cofd-tools/character-api/internal/api"
	"github.com/cofd-tools/character-api/internal/core/ports"
	"github.com/cofd-tools/character-api/internal/core/service"
	"github.com/cofd-tools/character-api/internal/infrastructure/config"
	"github.com/cofd-tools/character-api/internal/infrastructure/db/memory"
	"github.com/cofd-tools/character-api/internal/infrastructure/db/mongo"
	"github.com/cofd-tools/character-api/internal/infrastructure/db/redis"
	"github.com/cofd-tools/character-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "character-api: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "character-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

type repositories struct {
	users      ports.UserRepository
	characters ports.CharacterRepository
	merits     ports.MeritRepository
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	var (
		repos repositories
		db    *mongodriver.Database
		rdb   *goredis.Client
	)

	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		repos = repositories{users: store.Users(), characters: store.Characters(), merits: store.Merits()}
		log.Warn().Msg("using in-memory storage, data is lost on restart")
	default:
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := mongo.EnsureIndexes(ctx, database); err != nil {
			return err
		}
		db = database
		repos = repositories{
			users:      mongo.NewUserRepository(database),
			characters: mongo.NewCharacterRepository(database),
			merits:     mongo.NewMeritRepository(database),
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	// The cache stays a nil interface when Redis is not configured.
	var meritCache ports.MeritCache
	if rcfg := (redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); rcfg.Enabled() {
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		rdb = client
		meritCache = redis.NewMeritCache(client, cfg.Redis.MeritTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("merit cache enabled")
	}

	router := api.NewRouter(api.Dependencies{
		Auth:         service.NewAuthService(repos.users, cfg.JWTSecret, cfg.JWTExpiry, logger.Component("auth")),
		Characters:   service.NewCharacterService(repos.characters, logger.Component("characters")),
		Merits:       service.NewMeritService(repos.merits, meritCache, logger.Component("merits")),
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		ClientOrigin: cfg.ClientOrigin,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}
