package bot

import (
	"time"

	"blokus/internal/config"
	"blokus/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent for the given bot user ID, choosing the strategy
// tier from the identity's configured difficulty.
func NewAgent(userID string) (*Agent, error) {
	identity, ok := GetBotConfig(userID)
	level := LevelForDifficulty(config.GetDefaultBotDifficulty())
	name := userID
	if ok {
		level = LevelForDifficulty(identity.Difficulty)
		name = identity.DisplayName
	}

	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: name, Strategy: brain}, nil
}

// Play asks the agent to calculate its move based on the current game state.
// The deadline is derived from the strategy's own budget.
func (a *Agent) Play(game *domain.Game) (domain.Move, error) {
	var player *domain.Player
	for _, p := range game.Players {
		if p.UserID == a.ID {
			player = p
			break
		}
	}
	if player == nil {
		return domain.PassMove(0), nil
	}

	deadline := time.Now().Add(a.Strategy.Budget())
	move, err := a.Strategy.ChooseMove(game, player, deadline)
	if err != nil {
		return domain.PassMove(player.Seat), err
	}
	return move, nil
}
