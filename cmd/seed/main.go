package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"draftsmith/internal/config"
	"draftsmith/internal/repository/postgres"
	"draftsmith/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	clearData := flag.Bool("clear-data", false, "Clear all rows before seeding (keep schema)")
	ownerID := flag.String("owner", "dev-user", "Owner ID the demo project belongs to")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" {
		log.Fatalf("BLOCKED: cannot seed demo data in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	seeder := seed.NewDemoSeeder(pool, tables, logger)

	if *clearData {
		logger.Warn("clearing all rows", "prefix", cfg.TablePrefix)
		if err := seeder.Clear(ctx); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	if err := seeder.Seed(ctx, *ownerID); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
}
