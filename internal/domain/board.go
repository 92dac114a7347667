package domain

// BoardSize is the fixed edge length of the square board.
const BoardSize = 20

// EmptySeat marks an unoccupied board cell.
const EmptySeat = 0

// Board maps occupied cells to the 1-based seat that owns them.
// It only ever grows during a game.
type Board struct {
	cells map[Cell]int
}

// NewBoard returns an empty 20x20 board.
func NewBoard() *Board {
	return &Board{cells: make(map[Cell]int)}
}

// InBounds reports whether the cell lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// OccupantAt returns the seat occupying the cell, or EmptySeat.
func (b *Board) OccupantAt(c Cell) int {
	return b.cells[c]
}

// Occupied reports whether any seat owns the cell.
func (b *Board) Occupied(c Cell) bool {
	_, ok := b.cells[c]
	return ok
}

// CellCount returns the number of occupied cells.
func (b *Board) CellCount() int {
	return len(b.cells)
}

// CellsOwnedBy returns every cell the seat currently owns.
func (b *Board) CellsOwnedBy(seat int) []Cell {
	var out []Cell
	for c, s := range b.cells {
		if s == seat {
			out = append(out, c)
		}
	}
	return out
}

// CountOwnedBy returns the number of cells the seat owns.
func (b *Board) CountOwnedBy(seat int) int {
	n := 0
	for _, s := range b.cells {
		if s == seat {
			n++
		}
	}
	return n
}

// Place writes every cell for the seat in one step. It panics on an occupied
// or out-of-bounds cell; callers validate before placing.
func (b *Board) Place(seat int, cells []Cell) {
	for _, c := range cells {
		if !b.InBounds(c) {
			panic("board: placement out of bounds")
		}
		if b.Occupied(c) {
			panic("board: placement over occupied cell")
		}
	}
	for _, c := range cells {
		b.cells[c] = seat
	}
}

// Copy returns an independent snapshot for hypothetical placements.
func (b *Board) Copy() *Board {
	out := &Board{cells: make(map[Cell]int, len(b.cells))}
	for c, s := range b.cells {
		out.cells[c] = s
	}
	return out
}
