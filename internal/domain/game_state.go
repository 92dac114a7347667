package domain

// Phase is the lifecycle stage of a game. Transitions are one-way:
// setup -> playing -> game_over.
type Phase string

const (
	// PhaseSetup is the pre-game state where seats are assigned.
	PhaseSetup Phase = "setup"
	// PhasePlaying is the active state where pieces are placed.
	PhasePlaying Phase = "playing"
	// PhaseGameOver is the terminal state. No board or flag mutation follows.
	PhaseGameOver Phase = "game_over"
)

// Game holds the authoritative state for one match.
type Game struct {
	Phase        Phase
	Players      []*Player // seat order, index = seat-1
	Board        *Board
	CurrentIndex int
	Round        int

	// History is append-only and may keep growing after game over.
	History []Move
}

// NewGame builds a playing game for the given user IDs in seat order.
func NewGame(userIDs []string) *Game {
	players := make([]*Player, len(userIDs))
	for i, id := range userIDs {
		players[i] = NewPlayer(id, i+1)
	}
	return &Game{
		Phase:   PhasePlaying,
		Players: players,
		Board:   NewBoard(),
		Round:   1,
	}
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentIndex]
}

// PlayerAtSeat returns the player occupying the 1-based seat, or nil.
func (g *Game) PlayerAtSeat(seat int) *Player {
	if seat < 1 || seat > len(g.Players) {
		return nil
	}
	return g.Players[seat-1]
}

// Over reports whether the game reached its terminal phase.
func (g *Game) Over() bool {
	return g.Phase == PhaseGameOver
}

// Eligible reports whether the player can still be offered a turn this round.
func Eligible(p *Player) bool {
	return p.Active && !p.OutOfPieces() && !p.HasPassed
}
