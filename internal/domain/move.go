package domain

// Move is a single turn decision: either a pass or a piece placement.
// When Pass is true the placement fields are unset.
type Move struct {
	Pass      bool
	Seat      int
	PieceName string
	Rotation  Rotation
	Flip      bool
	Anchor    Cell
}

// PassMove returns a pass decision for the seat.
func PassMove(seat int) Move {
	return Move{Pass: true, Seat: seat}
}

// PlacementCells resolves the absolute cells the move would occupy.
// Flip is applied before rotation, and the transformed shape is normalized so
// the anchor addresses its top-left bounding corner.
func (m Move) PlacementCells() ([]Cell, bool) {
	if m.Pass {
		return nil, false
	}
	piece, ok := PieceByName(m.PieceName)
	if !ok {
		return nil, false
	}
	return piece.Transformed(m.Rotation, m.Flip).Normalized().Absolute(m.Anchor), true
}
