package domain

import "testing"

func TestNewPieceSet(t *testing.T) {
	pieces := NewPieceSet()
	if len(pieces) != PieceCount {
		t.Fatalf("piece set size = %d, want %d", len(pieces), PieceCount)
	}

	total := 0
	seen := make(map[string]bool)
	for _, p := range pieces {
		if seen[p.Name] {
			t.Fatalf("duplicate piece name: %s", p.Name)
		}
		seen[p.Name] = true
		total += p.Size()
	}
	if total != 89 {
		t.Fatalf("total cells = %d, want 89", total)
	}
}

func TestRotationClosure(t *testing.T) {
	// Four successive 90 degree rotations must reproduce the original cell
	// set for every canonical piece, order of cells aside.
	for _, p := range NewPieceSet() {
		t.Run(p.Name, func(t *testing.T) {
			got := p.Rotated(Rotate90).Rotated(Rotate90).Rotated(Rotate90).Rotated(Rotate90)
			if !SameCells(p, got) {
				t.Fatalf("four 90 rotations of %s changed the shape: %v -> %v", p.Name, p.Cells, got.Cells)
			}
		})
	}
}

func TestFlipInvolution(t *testing.T) {
	for _, p := range NewPieceSet() {
		t.Run(p.Name, func(t *testing.T) {
			got := p.Flipped().Flipped()
			if !SameCells(p, got) {
				t.Fatalf("double flip of %s changed the shape", p.Name)
			}
		})
	}
}

func TestRotatedMatchesComposition(t *testing.T) {
	// A single 180 rotation must equal two 90 rotations.
	for _, p := range NewPieceSet() {
		if !SameCells(p.Rotated(Rotate180), p.Rotated(Rotate90).Rotated(Rotate90)) {
			t.Fatalf("180 rotation of %s disagrees with two 90 rotations", p.Name)
		}
	}
}

func TestAbsoluteTranslation(t *testing.T) {
	p, ok := PieceByName("V3")
	if !ok {
		t.Fatal("V3 missing from canonical set")
	}

	cells := p.Absolute(Cell{Row: 5, Col: 7})
	want := map[Cell]bool{{5, 7}: true, {5, 8}: true, {6, 7}: true}
	if len(cells) != len(want) {
		t.Fatalf("absolute cell count = %d, want %d", len(cells), len(want))
	}
	for _, c := range cells {
		if !want[c] {
			t.Fatalf("unexpected absolute cell %v", c)
		}
	}
}

func TestNormalizedShiftsToOrigin(t *testing.T) {
	p, _ := PieceByName("I3")
	flipped := p.Flipped() // cols 0, -1, -2
	norm := flipped.Normalized()
	for _, c := range norm.Cells {
		if c.Row < 0 || c.Col < 0 {
			t.Fatalf("normalized cell still negative: %v", c)
		}
	}
	if !SameCells(norm, Piece{Cells: []Cell{{0, 0}, {0, 1}, {0, 2}}}) {
		t.Fatalf("normalized flipped I3 = %v", norm.Cells)
	}
}

func TestTransformedAppliesFlipFirst(t *testing.T) {
	// For L4 the two compositions differ, which pins down the agreed order.
	p, _ := PieceByName("L4")
	flipThenRotate := p.Flipped().Rotated(Rotate90)
	got := p.Transformed(Rotate90, true)
	if !SameCells(got, flipThenRotate) {
		t.Fatal("Transformed must apply flip before rotation")
	}

	rotateThenFlip := p.Rotated(Rotate90).Flipped()
	if SameCells(flipThenRotate, rotateThenFlip) {
		t.Fatal("test piece does not distinguish composition order")
	}
}
