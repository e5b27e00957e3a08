package repository

import "time"

// PlayerScore is one persistent counter row, either channel-scoped or global.
type PlayerScore struct {
	UserID string
	Score  int
}

// RoundRecord is the immutable history row written once per scored round.
type RoundRecord struct {
	ID          string
	ChannelID   string
	CategoryKey string
	SecretWord  string
	SpyID       string
	PlayerCount int
	SpyDelta    int
	StartedAt   time.Time
	EndedAt     time.Time
}
