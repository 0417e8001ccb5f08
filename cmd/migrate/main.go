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

	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before migrating (fresh start)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
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

	if *dropTables {
		logger.Warn("dropping all tables", "prefix", cfg.TablePrefix)
		if err := dropAll(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	logger.Info("running migrations",
		"environment", cfg.Environment,
		"prefix", cfg.TablePrefix,
	)

	if err := runMigrations(ctx, pool, tables); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	logger.Info("migrations completed")
}
