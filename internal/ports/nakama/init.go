package nakama

import (
	"context"
	"database/sql"

	"blokus/internal/bot"
	"blokus/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs, hooks and the match handler for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameBlokus, NewMatch); err != nil {
		return err
	}

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("InitModule: Could not load game config: %v", err)
	}

	// Pre-provision bot accounts so their seats carry real profiles.
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	} else if err := bot.ProvisionBots(ctx, nk, logger); err != nil {
		logger.Warn("InitModule: Could not provision bots: %v", err)
	}

	// The scores leaderboard keeps every player's best final score. Creation
	// is idempotent on server restarts.
	if err := nk.LeaderboardCreate(ctx, config.GetLeaderboardID(), true, "desc", "best", "", nil, true); err != nil {
		logger.Warn("InitModule: Could not create leaderboard: %v", err)
	}

	logger.Info("Blokus Go module loaded.")
	return nil
}
