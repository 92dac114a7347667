package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"blokus/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

const leaderboardTopDefaultLimit = 10

// LeaderboardEntry is one row in the RpcLeaderboardTop response.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
	Rank     int64  `json:"rank"`
}

// LeaderboardTopResponse is the payload returned by RpcLeaderboardTop.
type LeaderboardTopResponse struct {
	Leaderboard string             `json:"leaderboard"`
	Entries     []LeaderboardEntry `json:"entries"`
}

// rpcLeaderboardTop returns the best final scores. The payload may carry a
// record limit as a plain integer string; anything else uses the default.
func rpcLeaderboardTop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	limit := leaderboardTopDefaultLimit
	if payload != "" {
		if n, err := strconv.Atoi(payload); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	leaderboardID := config.GetLeaderboardID()
	records, _, _, _, err := nk.LeaderboardRecordsList(ctx, leaderboardID, nil, limit, "", 0)
	if err != nil {
		logger.Error("rpcLeaderboardTop: Failed to list records: %v", err)
		return "", err
	}

	resp := LeaderboardTopResponse{
		Leaderboard: leaderboardID,
		Entries:     make([]LeaderboardEntry, 0, len(records)),
	}
	for _, record := range records {
		resp.Entries = append(resp.Entries, LeaderboardEntry{
			UserID:   record.GetOwnerId(),
			Username: record.GetUsername().GetValue(),
			Score:    record.GetScore(),
			Rank:     record.GetRank(),
		})
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
