package bot

import (
	"time"

	"blokus/internal/bot/internal"
	"blokus/internal/domain"
)

// LookaheadBot is the Hard tier: it simulates each legal candidate on a board
// copy and scores the position it leaves behind. The deadline is polled
// before every evaluation so finished work is never discarded; running out of
// time degrades to the best candidate found so far, or the first legal
// candidate when none were scored.
type LookaheadBot struct {
	weights LookaheadWeights
}

// NewLookaheadBot constructs the Hard tier with the default weights.
func NewLookaheadBot() *LookaheadBot {
	return &LookaheadBot{weights: DefaultLookaheadWeights}
}

// Budget returns the tier's time budget.
func (b *LookaheadBot) Budget() time.Duration {
	return hardBudget
}

// ChooseMove evaluates legal candidates in enumeration order until done or
// out of time. A pass is returned only when there are no legal candidates.
func (b *LookaheadBot) ChooseMove(game *domain.Game, player *domain.Player, deadline time.Time) (domain.Move, error) {
	if player == nil || len(player.Unplaced) == 0 {
		return domain.PassMove(seatOf(player)), nil
	}

	firstMove := len(player.Placed) == 0
	candidates := internal.Candidates(game.Board, player.Unplaced, player.Seat, internal.EffortFull)
	legal := internal.LegalCandidates(game.Board, candidates, player.Seat, firstMove)
	if len(legal) == 0 {
		return domain.PassMove(player.Seat), nil
	}

	// Guaranteed fallback if the deadline trips before the first evaluation.
	best := legal[0]
	bestScore := 0.0
	scored := false

	for _, c := range legal {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
		s := b.simulate(game.Board, c, player.Seat)
		if !scored || s > bestScore {
			best, bestScore = c, s
			scored = true
		}
	}
	return best.Move(player.Seat), nil
}

// simulate applies the candidate to a copy of the board and scores the
// resulting position for the seat.
func (b *LookaheadBot) simulate(board *domain.Board, c internal.Candidate, seat int) float64 {
	after := board.Copy()
	after.Place(seat, c.Cells)

	score := b.weights.CornerWeight * float64(internal.OpenCorners(after, seat))
	score += b.weights.CellWeight * float64(after.CountOwnedBy(seat))
	score += b.weights.MobilityWeight * float64(internal.Mobility(after, seat))
	return score
}
