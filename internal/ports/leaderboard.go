package ports

import "context"

// ScoreRecord is a single player's final result for one finished game.
type ScoreRecord struct {
	UserID   string
	Score    int
	Rank     int
	Metadata map[string]interface{}
}

// LeaderboardPort defines the interface for publishing final game scores.
type LeaderboardPort interface {
	// SubmitScores writes each player's final score to the leaderboard.
	// Called once when a game reaches its terminal phase.
	SubmitScores(ctx context.Context, leaderboardID string, records []ScoreRecord) error
}
