package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"contribution-rewards-backend/internal/config"
	"contribution-rewards-backend/internal/domain"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/repository/postgres"
	"contribution-rewards-backend/internal/seed"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	dataPath := flag.String("data", "config/sample-data.yaml", "Path to sample data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("Failed to read sample data: %v", err)
	}
	data, err := seed.Parse(raw, cfg.Admin.SampleEmailPatterns)
	if err != nil {
		log.Fatalf("Invalid sample data: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Connected to database", "host", cfg.Database.Host, "database", cfg.Database.Database)

	ctx := context.Background()
	store := postgres.NewStore(db)
	if n, err := store.CategoryRepository.SeedDefaults(ctx, domain.DefaultCategories); err != nil {
		log.Fatalf("Failed to seed activity categories: %v", err)
	} else if n > 0 {
		logger.Info("Activity categories seeded", "count", n)
	}

	inTx := func(ctx context.Context, fn func(seed.Repositories) error) error {
		return store.WithTx(ctx, func(tx *postgres.Store) error {
			return fn(seed.Repositories{
				Users:      tx.UserRepository,
				Categories: tx.CategoryRepository,
				Activities: tx.ActivityRepository,
			})
		})
	}
	if err := seed.Apply(ctx, inTx, data, time.Now()); err != nil {
		log.Fatalf("Failed to populate sample data: %v", err)
	}
	logger.Info("Sample data populated", "users", len(data.Users), "activities", len(data.Activities))
}
