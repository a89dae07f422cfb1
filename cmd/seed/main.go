// Command seed drops the configured database and loads users, characters and
// merits from a JSON seed file through the same services the API uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cofd-tools/character-api/internal/core/service"
	"github.com/cofd-tools/character-api/internal/infrastructure/config"
	"github.com/cofd-tools/character-api/internal/infrastructure/db/mongo"
	"github.com/cofd-tools/character-api/pkg/logger"
)

func main() {
	file := flag.String("file", "cmd/seed/seed.json", "path to the JSON seed file")
	keep := flag.Bool("keep", false, "do not drop the database before seeding")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "character-seed"})

	data, err := loadSeed(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("cannot read seed file")
	}

	if err := run(ctx, cfg, data, !*keep, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func run(ctx context.Context, cfg *config.Config, data *seedFile, drop bool, log zerolog.Logger) error {
	log.Info().Str("uri", cfg.Mongo.URI).Msg("connecting to mongodb")
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if drop {
		log.Info().Str("database", cfg.Mongo.Database).Msg("dropping database")
		if err := db.Drop(ctx); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	s := &seeder{
		auth:       service.NewAuthService(mongo.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry, log),
		characters: service.NewCharacterService(mongo.NewCharacterRepository(db), log),
		merits:     service.NewMeritService(mongo.NewMeritRepository(db), nil, log),
		log:        log,
	}
	return s.seed(ctx, data)
}
