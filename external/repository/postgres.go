package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/majlislab/jasoos/internal/repository"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) IncrementChannelScore(ctx context.Context, channelID, userID string, delta int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO channel_scores (channel_id, user_id, score, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (channel_id, user_id)
		 DO UPDATE SET score = channel_scores.score + EXCLUDED.score, updated_at = NOW()`,
		channelID, userID, delta)
	return err
}

func (r *PostgresRepository) GetChannelScore(ctx context.Context, channelID, userID string) (int, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT score FROM channel_scores WHERE channel_id = $1 AND user_id = $2`,
		channelID, userID)
	var score int
	if err := row.Scan(&score); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return score, nil
}

func (r *PostgresRepository) ListChannelScores(ctx context.Context, channelID string) ([]repository.PlayerScore, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, score FROM channel_scores WHERE channel_id = $1 ORDER BY score DESC, user_id ASC`,
		channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayerScores(rows)
}

func (r *PostgresRepository) IncrementGlobalScore(ctx context.Context, userID string, delta int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO global_scores (user_id, score, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id)
		 DO UPDATE SET score = global_scores.score + EXCLUDED.score, updated_at = NOW()`,
		userID, delta)
	return err
}

func (r *PostgresRepository) GetGlobalScore(ctx context.Context, userID string) (int, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT score FROM global_scores WHERE user_id = $1`, userID)
	var score int
	if err := row.Scan(&score); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return score, nil
}

func (r *PostgresRepository) ListGlobalScores(ctx context.Context) ([]repository.PlayerScore, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, score FROM global_scores ORDER BY score DESC, user_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayerScores(rows)
}

func (r *PostgresRepository) RecordRound(ctx context.Context, record repository.RoundRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO rounds (id, channel_id, category_key, secret_word, spy_id, player_count, spy_delta, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID, record.ChannelID, record.CategoryKey, record.SecretWord,
		record.SpyID, record.PlayerCount, record.SpyDelta, record.StartedAt, record.EndedAt)
	return err
}

func scanPlayerScores(rows pgx.Rows) ([]repository.PlayerScore, error) {
	var list []repository.PlayerScore
	for rows.Next() {
		var s repository.PlayerScore
		if err := rows.Scan(&s.UserID, &s.Score); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
