package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS channel_scores (
		channel_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		score BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (channel_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS global_scores (
		user_id TEXT PRIMARY KEY,
		score BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_global_scores_score ON global_scores (score DESC)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		id UUID PRIMARY KEY,
		channel_id TEXT NOT NULL,
		category_key TEXT NOT NULL,
		secret_word TEXT NOT NULL,
		spy_id TEXT NOT NULL,
		player_count INTEGER NOT NULL,
		spy_delta INTEGER NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_channel ON rounds (channel_id, ended_at)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
