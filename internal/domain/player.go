package domain

// PieceCount is the size of each player's starting inventory.
const PieceCount = 21

// PlacedPiece records a consumed piece together with its final placement.
type PlacedPiece struct {
	Piece    Piece
	Rotation Rotation
	Flip     bool
	Anchor   Cell
}

// Player holds the domain state for one seat in a game.
// Unplaced and Placed are disjoint and their union is always the original 21.
type Player struct {
	UserID    string
	Seat      int // 1-based
	Color     string
	Unplaced  []Piece
	Placed    []PlacedPiece
	Active    bool
	HasPassed bool
	Score     int
}

// seatColors follows the standard play order around the board.
var seatColors = [4]string{"blue", "yellow", "red", "green"}

// NewPlayer returns a player with a full piece inventory for the seat.
func NewPlayer(userID string, seat int) *Player {
	return &Player{
		UserID:   userID,
		Seat:     seat,
		Color:    seatColors[(seat-1)%len(seatColors)],
		Unplaced: NewPieceSet(),
		Active:   true,
	}
}

// HoldsPiece reports whether the named piece is still unplaced.
func (p *Player) HoldsPiece(name string) bool {
	for _, piece := range p.Unplaced {
		if piece.Name == name {
			return true
		}
	}
	return false
}

// ConsumePiece moves the named piece from unplaced to placed with its final
// placement. It panics if the player does not hold the piece; callers must
// validate first, so a miss here is a coordinator bug.
func (p *Player) ConsumePiece(name string, rotation Rotation, flip bool, anchor Cell) {
	for i, piece := range p.Unplaced {
		if piece.Name == name {
			p.Unplaced = append(p.Unplaced[:i], p.Unplaced[i+1:]...)
			p.Placed = append(p.Placed, PlacedPiece{
				Piece:    piece,
				Rotation: rotation,
				Flip:     flip,
				Anchor:   anchor,
			})
			return
		}
	}
	panic("player: consuming a piece the player does not hold")
}

// UnplacedCellCount sums the sizes of the remaining pieces.
func (p *Player) UnplacedCellCount() int {
	total := 0
	for _, piece := range p.Unplaced {
		total += piece.Size()
	}
	return total
}

// OutOfPieces reports whether the player placed the whole inventory.
func (p *Player) OutOfPieces() bool {
	return len(p.Unplaced) == 0
}
