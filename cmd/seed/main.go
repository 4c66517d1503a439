package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/pommyhq/accounts-api/config"
	pginfra "github.com/pommyhq/accounts-api/internal/infrastructure/postgres"
	"github.com/pommyhq/accounts-api/pkg/helpers"
)

// Seeds a demo account for local development. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword("Password123!")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (email) DO NOTHING
	`, uuid.NewString(), "Demo User", "demo@example.com", hash, now)
	if err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}

	log.Println("seeded demo user demo@example.com (password: Password123!)")
}
