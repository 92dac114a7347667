package domain

import "sort"

// Cell is a board coordinate or a piece-relative offset.
type Cell struct {
	Row int
	Col int
}

// Rotation is a clockwise piece rotation in degrees.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Rotations lists the four legal rotations in enumeration order.
var Rotations = []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

// Piece is an immutable polyomino shape. Transforms return new values.
type Piece struct {
	Name  string
	Cells []Cell
}

// Size returns the number of cells the piece covers.
func (p Piece) Size() int {
	return len(p.Cells)
}

// Rotated returns the piece rotated clockwise by the given rotation.
// Four successive 90 degree rotations reproduce the original cell set.
func (p Piece) Rotated(r Rotation) Piece {
	out := Piece{Name: p.Name, Cells: make([]Cell, len(p.Cells))}
	for i, c := range p.Cells {
		switch r {
		case Rotate90:
			out.Cells[i] = Cell{Row: -c.Col, Col: c.Row}
		case Rotate180:
			out.Cells[i] = Cell{Row: -c.Row, Col: -c.Col}
		case Rotate270:
			out.Cells[i] = Cell{Row: c.Col, Col: -c.Row}
		default:
			out.Cells[i] = c
		}
	}
	return out
}

// Flipped mirrors the piece across its row axis. Applied twice it is identity.
func (p Piece) Flipped() Piece {
	out := Piece{Name: p.Name, Cells: make([]Cell, len(p.Cells))}
	for i, c := range p.Cells {
		out.Cells[i] = Cell{Row: c.Row, Col: -c.Col}
	}
	return out
}

// Transformed applies flip first, then rotation. Every consumer composes the
// two in this order so candidate cells always agree with legality checks.
func (p Piece) Transformed(r Rotation, flip bool) Piece {
	out := p
	if flip {
		out = out.Flipped()
	}
	return out.Rotated(r)
}

// Normalized shifts the piece so its minimum row and column are zero.
func (p Piece) Normalized() Piece {
	if len(p.Cells) == 0 {
		return p
	}
	minRow, minCol := p.Cells[0].Row, p.Cells[0].Col
	for _, c := range p.Cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	out := Piece{Name: p.Name, Cells: make([]Cell, len(p.Cells))}
	for i, c := range p.Cells {
		out.Cells[i] = Cell{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	return out
}

// Absolute translates every cell of the piece by the anchor coordinate.
func (p Piece) Absolute(anchor Cell) []Cell {
	out := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = Cell{Row: c.Row + anchor.Row, Col: c.Col + anchor.Col}
	}
	return out
}

// SameCells reports whether two pieces cover the same cell set regardless of order.
func SameCells(a, b Piece) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	as := append([]Cell(nil), a.Cells...)
	bs := append([]Cell(nil), b.Cells...)
	less := func(cells []Cell) func(i, j int) bool {
		return func(i, j int) bool {
			if cells[i].Row != cells[j].Row {
				return cells[i].Row < cells[j].Row
			}
			return cells[i].Col < cells[j].Col
		}
	}
	sort.Slice(as, less(as))
	sort.Slice(bs, less(bs))
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// canonicalShapes is the standard 21-piece inventory, 89 cells in total.
var canonicalShapes = []Piece{
	{Name: "I1", Cells: []Cell{{0, 0}}},
	{Name: "I2", Cells: []Cell{{0, 0}, {0, 1}}},
	{Name: "I3", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}}},
	{Name: "V3", Cells: []Cell{{0, 0}, {0, 1}, {1, 0}}},
	{Name: "I4", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	{Name: "O4", Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{Name: "T4", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
	{Name: "L4", Cells: []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	{Name: "S4", Cells: []Cell{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
	{Name: "F5", Cells: []Cell{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}},
	{Name: "I5", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}},
	{Name: "L5", Cells: []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}},
	{Name: "N5", Cells: []Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "P5", Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}},
	{Name: "T5", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}}},
	{Name: "U5", Cells: []Cell{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
	{Name: "V5", Cells: []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
	{Name: "W5", Cells: []Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}},
	{Name: "X5", Cells: []Cell{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}},
	{Name: "Y5", Cells: []Cell{{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{Name: "Z5", Cells: []Cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}},
}

// NewPieceSet returns a fresh copy of the 21 canonical pieces for one player.
func NewPieceSet() []Piece {
	out := make([]Piece, len(canonicalShapes))
	for i, p := range canonicalShapes {
		out[i] = Piece{Name: p.Name, Cells: append([]Cell(nil), p.Cells...)}
	}
	return out
}

// PieceByName returns the canonical shape with the given name.
func PieceByName(name string) (Piece, bool) {
	for _, p := range canonicalShapes {
		if p.Name == name {
			return Piece{Name: p.Name, Cells: append([]Cell(nil), p.Cells...)}, true
		}
	}
	return Piece{}, false
}
