package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@careerpulse.com"
	demoPassword = "demo123"
)

// SeedDemoAccount inserts a demo login when it does not exist yet. Intended
// for local environments behind POSTGRES_SEED_DEMO_DATA.
func SeedDemoAccount(ctx context.Context, pool *pgxpool.Pool, bcryptCost int, logger *zap.Logger) error {
	var id string
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email=$1`, demoEmail).Scan(&id)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO users (id, first_name, last_name, username, email, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := pool.Exec(ctx, query, uuid.NewString(), "Demo", "User", "demouser", demoEmail, string(hash)); err != nil {
		return err
	}

	logger.Info("demo account created", zap.String("email", demoEmail))
	return nil
}
