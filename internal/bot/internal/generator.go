package internal

import (
	"blokus/internal/domain"
)

// Effort selects how exhaustively the generator searches.
type Effort int

const (
	// EffortFull enumerates every piece, flip, rotation and anchor.
	EffortFull Effort = iota
	// EffortReduced bounds Easy-tier latency: first 5 unplaced pieces,
	// rotations 0 and 180 only, anchors on a stride-2 grid. It is
	// intentionally incomplete and may miss legal moves.
	EffortReduced
)

const (
	reducedPieceLimit   = 5
	reducedAnchorStride = 2
)

// Candidate is an untested placement tuple with its resolved absolute cells.
// The generator pre-checks bounds and overlap only; full legality is the
// caller's job when a verdict is actually needed.
type Candidate struct {
	Piece    domain.Piece
	Rotation domain.Rotation
	Flip     bool
	Anchor   domain.Cell
	Cells    []domain.Cell
}

// Move converts the candidate into a placement decision for the seat.
func (c Candidate) Move(seat int) domain.Move {
	return domain.Move{
		Seat:      seat,
		PieceName: c.Piece.Name,
		Rotation:  c.Rotation,
		Flip:      c.Flip,
		Anchor:    c.Anchor,
	}
}

// Candidates enumerates placement tuples for the seat's unplaced pieces.
// Enumeration order is deterministic: piece, then flip, then rotation, then
// anchor row-major. Strategies rely on this for first-seen tie-breaking.
func Candidates(board *domain.Board, pieces []domain.Piece, seat int, effort Effort) []Candidate {
	rotations := domain.Rotations
	stride := 1
	if effort == EffortReduced {
		if len(pieces) > reducedPieceLimit {
			pieces = pieces[:reducedPieceLimit]
		}
		rotations = []domain.Rotation{domain.Rotate0, domain.Rotate180}
		stride = reducedAnchorStride
	}

	var out []Candidate
	for _, piece := range pieces {
		for _, flip := range []bool{false, true} {
			for _, rotation := range rotations {
				shape := piece.Transformed(rotation, flip).Normalized()
				for row := 0; row < domain.BoardSize; row += stride {
					for col := 0; col < domain.BoardSize; col += stride {
						anchor := domain.Cell{Row: row, Col: col}
						cells := shape.Absolute(anchor)
						if !fits(board, cells) {
							continue
						}
						out = append(out, Candidate{
							Piece:    piece,
							Rotation: rotation,
							Flip:     flip,
							Anchor:   anchor,
							Cells:    cells,
						})
					}
				}
			}
		}
	}
	return out
}

// LegalCandidates filters candidates through the full legality engine.
func LegalCandidates(board *domain.Board, candidates []Candidate, seat int, firstMove bool) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if domain.ValidateMove(board, seat, c.Cells, firstMove).Valid {
			out = append(out, c)
		}
	}
	return out
}

// fits is the fast bounds+overlap pre-check.
func fits(board *domain.Board, cells []domain.Cell) bool {
	for _, c := range cells {
		if !board.InBounds(c) || board.Occupied(c) {
			return false
		}
	}
	return true
}
