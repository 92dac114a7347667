package bot

import (
	"time"

	"blokus/internal/domain"
)

// BotLevel selects one of the three strategy tiers.
type BotLevel int

const (
	// BotLevelEasy is the uniform-random strategy with candidate caching.
	BotLevelEasy BotLevel = iota + 1
	// BotLevelMedium is the single-pass corner heuristic.
	BotLevelMedium
	// BotLevelHard is the multi-factor evaluation with simulated look-ahead.
	BotLevelHard
)

// LevelForDifficulty maps an identity difficulty string to a level.
// Unknown strings fall back to easy.
func LevelForDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "medium":
		return BotLevelMedium
	case "hard":
		return BotLevelHard
	default:
		return BotLevelEasy
	}
}

// Brain is the common strategy contract. ChooseMove must return a pass move
// when no legal candidate exists, never an error; errors are reserved for
// contract violations. The deadline carries Go's monotonic clock reading, so
// comparisons are immune to wall-clock adjustments.
type Brain interface {
	ChooseMove(game *domain.Game, player *domain.Player, deadline time.Time) (domain.Move, error)
	Budget() time.Duration
}
