package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"sitenav/internal/config"
	"sitenav/internal/repository/postgres"
)

// Drops the navigation item table for the current ENVIRONMENT's prefix so
// the next `navlint publish` recreates it.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	table := postgres.NewTableNames(cfg.TablePrefix).NavigationItems
	if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
		log.Fatalf("Failed to drop table: %v", err)
	}

	fmt.Printf("Table %s dropped (environment: %s)\n", table, cfg.Environment)
}
