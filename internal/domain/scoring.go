package domain

import "sort"

const (
	// AllPlacedBonus rewards emptying the whole inventory.
	AllPlacedBonus = 15
	// MonominoLastBonus stacks on top when the final piece was the unit piece.
	MonominoLastBonus = 5
)

// FinalScore computes a player's end-of-game score: minus one point per
// remaining cell, plus bonuses for placing everything.
func FinalScore(p *Player) int {
	score := -p.UnplacedCellCount()
	if p.OutOfPieces() {
		score += AllPlacedBonus
		if last := p.Placed[len(p.Placed)-1]; last.Piece.Size() == 1 {
			score += MonominoLastBonus
		}
	}
	return score
}

// ApplyFinalScores writes each player's final score onto the player.
func ApplyFinalScores(g *Game) {
	for _, p := range g.Players {
		p.Score = FinalScore(p)
	}
}

// Winners returns every player whose score equals the maximum. Ties produce
// multiple winners.
func Winners(players []*Player) []*Player {
	if len(players) == 0 {
		return nil
	}
	max := players[0].Score
	for _, p := range players[1:] {
		if p.Score > max {
			max = p.Score
		}
	}
	var out []*Player
	for _, p := range players {
		if p.Score == max {
			out = append(out, p)
		}
	}
	return out
}

// Ranked pairs a player with its competition rank.
type Ranked struct {
	Player *Player
	Rank   int
}

// RankPlayers sorts players descending by score and assigns standard
// competition ranks: equal scores share a rank and the next distinct score
// skips the tied positions (1, 1, 3, ...).
func RankPlayers(players []*Player) []Ranked {
	sorted := append([]*Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := make([]Ranked, len(sorted))
	for i, p := range sorted {
		rank := i + 1
		if i > 0 && p.Score == sorted[i-1].Score {
			rank = out[i-1].Rank
		}
		out[i] = Ranked{Player: p, Rank: rank}
	}
	return out
}
