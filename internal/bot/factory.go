package bot

import (
	"fmt"
)

// NewBrain creates a strategy for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelEasy:
		return NewRandomBot(nil), nil
	case BotLevelMedium:
		return NewCornerBot(), nil
	case BotLevelHard:
		return NewLookaheadBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
