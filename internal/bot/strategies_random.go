package bot

import (
	"math/rand"
	"time"

	"blokus/internal/bot/internal"
	"blokus/internal/domain"
)

// RandomBot is the Easy tier: reduced-effort enumeration, a private bounded
// cache keyed by a coarse board fingerprint, and a uniform pick among the
// cached legal candidates. One instance per player; the cache key only
// disambiguates by seat, so sharing an instance across players is a bug.
type RandomBot struct {
	cache *internal.MoveCache
	rng   *rand.Rand
}

// NewRandomBot constructs the Easy tier with the provided rng or a
// time-seeded default.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomBot{cache: internal.NewMoveCache(), rng: rng}
}

// Budget returns the tier's nominal time budget.
func (b *RandomBot) Budget() time.Duration {
	return easyBudget
}

// ChooseMove picks uniformly among cached legal candidates, recomputing on a
// cache miss. The fingerprint is coarse, so a hit can hold candidates made
// stale by unsampled board changes; a stale pick falls through to a fresh
// enumeration instead of reaching the coordinator as an illegal move.
func (b *RandomBot) ChooseMove(game *domain.Game, player *domain.Player, _ time.Time) (domain.Move, error) {
	if player == nil || len(player.Unplaced) == 0 {
		return domain.PassMove(seatOf(player)), nil
	}

	firstMove := len(player.Placed) == 0
	key := internal.Fingerprint(game.Board, player.Unplaced, player.Seat)

	if cached, ok := b.cache.Get(key); ok && len(cached) > 0 {
		pick := cached[b.rng.Intn(len(cached))]
		if domain.ValidateMove(game.Board, player.Seat, pick.Cells, firstMove).Valid {
			return pick.Move(player.Seat), nil
		}
	}

	candidates := internal.Candidates(game.Board, player.Unplaced, player.Seat, internal.EffortReduced)
	legal := internal.LegalCandidates(game.Board, candidates, player.Seat, firstMove)
	b.cache.Put(key, legal)

	if len(legal) == 0 {
		return domain.PassMove(player.Seat), nil
	}
	return legal[b.rng.Intn(len(legal))].Move(player.Seat), nil
}

func seatOf(p *domain.Player) int {
	if p == nil {
		return 0
	}
	return p.Seat
}
