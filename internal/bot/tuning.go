package bot

import "time"

// CornerWeights tune the Medium tier's single-pass candidate scoring.
type CornerWeights struct {
	CornerWeight float64
	SizeWeight   float64
	EdgeWeight   float64
}

// LookaheadWeights tune the Hard tier's post-simulation evaluation.
type LookaheadWeights struct {
	CornerWeight   float64
	CellWeight     float64
	MobilityWeight float64
}

// DefaultCornerWeights favor opening new corners, then piece size, then
// hugging the board edge early.
var DefaultCornerWeights = CornerWeights{
	CornerWeight: 10,
	SizeWeight:   2,
	EdgeWeight:   3,
}

// DefaultLookaheadWeights score the simulated board after a candidate move.
var DefaultLookaheadWeights = LookaheadWeights{
	CornerWeight:   15,
	CellWeight:     1,
	MobilityWeight: 2,
}

// Per-tier wall-clock budgets. The Easy tier never iterates past enumeration
// so its budget is nominal; only the Hard tier polls its deadline.
const (
	easyBudget   = 3 * time.Second
	mediumBudget = 5 * time.Second
	hardBudget   = 8 * time.Second
)
