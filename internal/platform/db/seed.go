package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"financeflow/internal/domain/auth"
	"financeflow/internal/platform/config"
)

// Seed provisions the optional demo account. Existing accounts are left
// untouched so repeated startups are safe.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedDemoUsername == "" {
		return nil
	}
	return ensureUser(ctx, pool, cfg.SeedDemoUsername, cfg.SeedDemoPassword)
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, username, password string) error {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, "INSERT INTO users (username, password_hash) VALUES ($1, $2)", username, hash)
	return err
}
