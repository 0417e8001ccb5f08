package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Read environment to determine table prefix
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev" // Default to dev
	}

	prefix := env + "_"
	if env == "prod" {
		log.Fatal("refusing to drop production tables; do it by hand if you really mean it")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	// Drop all tables with environment-specific prefix, children first
	dropSQL := fmt.Sprintf(`
		DROP TABLE IF EXISTS %srevisions CASCADE;
		DROP TABLE IF EXISTS %srefinements CASCADE;
		DROP TABLE IF EXISTS %scontent_items CASCADE;
		DROP TABLE IF EXISTS %soutlines CASCADE;
		DROP TABLE IF EXISTS %sprojects CASCADE;
	`, prefix, prefix, prefix, prefix, prefix)

	if _, err := db.Exec(dropSQL); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	fmt.Printf("All tables dropped successfully (prefix: %s)\n", prefix)
}
