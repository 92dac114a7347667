package domain

// InvalidReason is the closed set of placement rejection causes.
type InvalidReason int

const (
	ReasonNone InvalidReason = iota
	ReasonOutOfBounds
	ReasonOverlap
	ReasonMissingStartingCorner
	ReasonEdgeAdjacency
	ReasonMissingCornerConnection
)

// String returns a human-readable rejection cause for UI surfacing.
func (r InvalidReason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case ReasonOutOfBounds:
		return "piece extends outside the board"
	case ReasonOverlap:
		return "piece overlaps an occupied cell"
	case ReasonMissingStartingCorner:
		return "first piece must cover the starting corner"
	case ReasonEdgeAdjacency:
		return "piece shares an edge with your own piece"
	case ReasonMissingCornerConnection:
		return "piece must touch a corner of your own piece"
	default:
		return "invalid"
	}
}

// Result is a legality verdict: Valid, or Invalid with one reason.
type Result struct {
	Valid  bool
	Reason InvalidReason
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(reason InvalidReason) Result {
	return Result{Reason: reason}
}

// StartingCorner returns the board corner assigned to a 1-based seat.
func StartingCorner(seat int) Cell {
	switch seat {
	case 1:
		return Cell{Row: 0, Col: 0}
	case 2:
		return Cell{Row: 0, Col: BoardSize - 1}
	case 3:
		return Cell{Row: BoardSize - 1, Col: BoardSize - 1}
	case 4:
		return Cell{Row: BoardSize - 1, Col: 0}
	default:
		panic("rules: seat out of range")
	}
}

var orthogonal = []Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var diagonal = []Cell{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// ValidateMove decides whether the seat may occupy the given absolute cells.
// firstMove is true while the seat has no piece on the board. Checks run in
// order and stop at the first failure: bounds, overlap, starting corner (first
// move only), then the same-seat adjacency rules. Edge contact with a
// different seat's cells is deliberately unconstrained: only same-seat edge
// contact is forbidden, and only same-seat corner contact is required.
func ValidateMove(board *Board, seat int, cells []Cell, firstMove bool) Result {
	if len(cells) == 0 {
		return invalid(ReasonOutOfBounds)
	}
	for _, c := range cells {
		if !board.InBounds(c) {
			return invalid(ReasonOutOfBounds)
		}
	}
	for _, c := range cells {
		if board.Occupied(c) {
			return invalid(ReasonOverlap)
		}
	}

	if firstMove {
		corner := StartingCorner(seat)
		for _, c := range cells {
			if c == corner {
				return valid()
			}
		}
		return invalid(ReasonMissingStartingCorner)
	}

	for _, c := range cells {
		for _, d := range orthogonal {
			n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if board.OccupantAt(n) == seat {
				return invalid(ReasonEdgeAdjacency)
			}
		}
	}

	for _, c := range cells {
		for _, d := range diagonal {
			n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if board.OccupantAt(n) == seat {
				return valid()
			}
		}
	}
	return invalid(ReasonMissingCornerConnection)
}
