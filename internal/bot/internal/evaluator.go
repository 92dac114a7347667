package internal

import (
	"blokus/internal/domain"
)

var (
	orthogonal = []domain.Cell{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
	diagonal   = []domain.Cell{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
)

// CornerConnections counts diagonal contacts between the candidate cells and
// cells the seat already owns. Each (candidate cell, own cell) pair counts
// once.
func CornerConnections(board *domain.Board, cells []domain.Cell, seat int) int {
	count := 0
	for _, c := range cells {
		for _, d := range diagonal {
			n := domain.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if board.OccupantAt(n) == seat {
				count++
			}
		}
	}
	return count
}

// OpenCorners counts the seat's legal growth points: empty in-bounds cells
// that touch a seat cell diagonally without touching one orthogonally.
func OpenCorners(board *domain.Board, seat int) int {
	count := 0
	seen := make(map[domain.Cell]bool)
	for _, own := range board.CellsOwnedBy(seat) {
		for _, d := range diagonal {
			n := domain.Cell{Row: own.Row + d.Row, Col: own.Col + d.Col}
			if seen[n] || !board.InBounds(n) || board.Occupied(n) {
				continue
			}
			seen[n] = true
			if !edgeTouchesSeat(board, n, seat) {
				count++
			}
		}
	}
	return count
}

// Mobility estimates room to grow: empty cells orthogonally adjacent to any
// cell the seat owns.
func Mobility(board *domain.Board, seat int) int {
	count := 0
	seen := make(map[domain.Cell]bool)
	for _, own := range board.CellsOwnedBy(seat) {
		for _, d := range orthogonal {
			n := domain.Cell{Row: own.Row + d.Row, Col: own.Col + d.Col}
			if seen[n] || !board.InBounds(n) || board.Occupied(n) {
				continue
			}
			seen[n] = true
			count++
		}
	}
	return count
}

// NearEdge reports whether the anchor sits within two cells of a board edge.
func NearEdge(anchor domain.Cell) bool {
	return anchor.Row <= 2 || anchor.Col <= 2 ||
		anchor.Row >= domain.BoardSize-3 || anchor.Col >= domain.BoardSize-3
}

func edgeTouchesSeat(board *domain.Board, c domain.Cell, seat int) bool {
	for _, d := range orthogonal {
		n := domain.Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if board.OccupantAt(n) == seat {
			return true
		}
	}
	return false
}
