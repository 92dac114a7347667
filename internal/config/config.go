package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int    `json:"bot_auto_fill_delay_seconds"`
	BotMinDelaySeconds      int    `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds      int    `json:"bot_max_delay_seconds"`
	DefaultBotDifficulty    string `json:"default_bot_difficulty"`
	Leaderboard             string `json:"leaderboard"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTurnDurationSeconds returns the per-turn clock, with a safe default when
// no config was loaded.
func GetTurnDurationSeconds() int {
	if cfg == nil || cfg.TurnDurationSeconds <= 0 {
		return 60
	}
	return cfg.TurnDurationSeconds
}

// GetBotAutoFillDelaySeconds returns how long a solo lobby waits before bots
// are added to the empty seats.
func GetBotAutoFillDelaySeconds() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 10
	}
	return cfg.BotAutoFillDelaySeconds
}

// GetBotDelayRange returns the simulated thinking time window for bot turns,
// in seconds.
func GetBotDelayRange() (min, max int) {
	if cfg == nil || cfg.BotMinDelaySeconds <= 0 || cfg.BotMaxDelaySeconds < cfg.BotMinDelaySeconds {
		return 1, 3
	}
	return cfg.BotMinDelaySeconds, cfg.BotMaxDelaySeconds
}

// GetDefaultBotDifficulty returns the difficulty used for auto-filled bots
// that have no identity entry of their own.
func GetDefaultBotDifficulty() string {
	if cfg == nil || cfg.DefaultBotDifficulty == "" {
		return "easy"
	}
	return cfg.DefaultBotDifficulty
}

// GetLeaderboardID returns the leaderboard that final scores are written to.
func GetLeaderboardID() string {
	if cfg == nil || cfg.Leaderboard == "" {
		return "blokus_scores"
	}
	return cfg.Leaderboard
}
