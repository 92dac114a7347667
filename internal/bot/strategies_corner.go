package bot

import (
	"time"

	"blokus/internal/bot/internal"
	"blokus/internal/domain"
)

// CornerBot is the Medium tier: full enumeration and a single scoring pass
// over every legal candidate. The candidate count is bounded by board size,
// so the budget is not polled inside the loop.
type CornerBot struct {
	weights CornerWeights
}

// NewCornerBot constructs the Medium tier with the default weights.
func NewCornerBot() *CornerBot {
	return &CornerBot{weights: DefaultCornerWeights}
}

// Budget returns the tier's time budget.
func (b *CornerBot) Budget() time.Duration {
	return mediumBudget
}

// ChooseMove returns the highest-scoring legal candidate. Ties keep the
// first-seen candidate, which enumeration order makes deterministic.
func (b *CornerBot) ChooseMove(game *domain.Game, player *domain.Player, _ time.Time) (domain.Move, error) {
	if player == nil || len(player.Unplaced) == 0 {
		return domain.PassMove(seatOf(player)), nil
	}

	firstMove := len(player.Placed) == 0
	candidates := internal.Candidates(game.Board, player.Unplaced, player.Seat, internal.EffortFull)
	legal := internal.LegalCandidates(game.Board, candidates, player.Seat, firstMove)
	if len(legal) == 0 {
		return domain.PassMove(player.Seat), nil
	}

	best := legal[0]
	bestScore := b.score(game.Board, best, player.Seat)
	for _, c := range legal[1:] {
		if s := b.score(game.Board, c, player.Seat); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best.Move(player.Seat), nil
}

func (b *CornerBot) score(board *domain.Board, c internal.Candidate, seat int) float64 {
	score := b.weights.CornerWeight * float64(internal.CornerConnections(board, c.Cells, seat))
	score += b.weights.SizeWeight * float64(c.Piece.Size())
	if internal.NearEdge(c.Anchor) {
		score += b.weights.EdgeWeight
	}
	return score
}
