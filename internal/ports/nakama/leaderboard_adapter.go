package nakama

import (
	"context"
	"fmt"

	"blokus/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaLeaderboardAdapter implements ports.LeaderboardPort using Nakama's
// leaderboard API.
type NakamaLeaderboardAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaLeaderboardAdapter creates a new leaderboard adapter.
func NewNakamaLeaderboardAdapter(nk runtime.NakamaModule) *NakamaLeaderboardAdapter {
	return &NakamaLeaderboardAdapter{nk: nk}
}

// SubmitScores writes one record per player. A failed write aborts the batch;
// the caller decides whether that is fatal for the match.
func (a *NakamaLeaderboardAdapter) SubmitScores(ctx context.Context, leaderboardID string, records []ports.ScoreRecord) error {
	for _, record := range records {
		username := ""
		if _, err := a.nk.LeaderboardRecordWrite(ctx, leaderboardID, record.UserID, username, int64(record.Score), int64(record.Rank), record.Metadata, nil); err != nil {
			return fmt.Errorf("failed to write leaderboard record for user %s: %w", record.UserID, err)
		}
	}
	return nil
}

var _ ports.LeaderboardPort = (*NakamaLeaderboardAdapter)(nil)
