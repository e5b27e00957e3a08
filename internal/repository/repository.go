package repository

import "context"

// ScoreRepository exposes the two persistent score counters. Increments must
// be atomic on the storage side; callers never read-modify-write.
type ScoreRepository interface {
	IncrementChannelScore(ctx context.Context, channelID, userID string, delta int) error
	GetChannelScore(ctx context.Context, channelID, userID string) (int, error)
	ListChannelScores(ctx context.Context, channelID string) ([]PlayerScore, error)
	IncrementGlobalScore(ctx context.Context, userID string, delta int) error
	GetGlobalScore(ctx context.Context, userID string) (int, error)
	ListGlobalScores(ctx context.Context) ([]PlayerScore, error)
}

type RoundRepository interface {
	RecordRound(ctx context.Context, record RoundRecord) error
}

type Repository interface {
	ScoreRepository
	RoundRepository
}
