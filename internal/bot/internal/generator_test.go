package internal

import (
	"testing"

	"blokus/internal/domain"
)

func pieceSubset(t *testing.T, names ...string) []domain.Piece {
	t.Helper()
	out := make([]domain.Piece, 0, len(names))
	for _, name := range names {
		p, ok := domain.PieceByName(name)
		if !ok {
			t.Fatalf("unknown piece %s", name)
		}
		out = append(out, p)
	}
	return out
}

func TestCandidates_PrecheckExcludesOverlapAndBounds(t *testing.T) {
	board := domain.NewBoard()
	board.Place(2, []domain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}})

	candidates := Candidates(board, pieceSubset(t, "I2"), 1, EffortFull)
	if len(candidates) == 0 {
		t.Fatal("expected candidates on a nearly empty board")
	}
	for _, c := range candidates {
		for _, cell := range c.Cells {
			if !board.InBounds(cell) {
				t.Fatalf("candidate cell %v out of bounds", cell)
			}
			if board.Occupied(cell) {
				t.Fatalf("candidate cell %v overlaps occupied cell", cell)
			}
		}
	}
}

func TestCandidates_ReducedEffortBounds(t *testing.T) {
	board := domain.NewBoard()
	pieces := domain.NewPieceSet()

	candidates := Candidates(board, pieces, 1, EffortReduced)
	allowedPieces := make(map[string]bool)
	for _, p := range pieces[:5] {
		allowedPieces[p.Name] = true
	}

	for _, c := range candidates {
		if !allowedPieces[c.Piece.Name] {
			t.Fatalf("reduced effort enumerated piece %s beyond the first 5", c.Piece.Name)
		}
		if c.Rotation != domain.Rotate0 && c.Rotation != domain.Rotate180 {
			t.Fatalf("reduced effort used rotation %d", c.Rotation)
		}
		if c.Anchor.Row%2 != 0 || c.Anchor.Col%2 != 0 {
			t.Fatalf("reduced effort anchor %v off the stride-2 grid", c.Anchor)
		}
	}
}

func TestCandidates_DeterministicOrder(t *testing.T) {
	board := domain.NewBoard()
	pieces := pieceSubset(t, "I1", "I2")

	first := Candidates(board, pieces, 1, EffortFull)
	second := Candidates(board, pieces, 1, EffortFull)
	if len(first) != len(second) {
		t.Fatalf("candidate counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Piece.Name != second[i].Piece.Name ||
			first[i].Rotation != second[i].Rotation ||
			first[i].Flip != second[i].Flip ||
			first[i].Anchor != second[i].Anchor {
			t.Fatalf("enumeration order not deterministic at index %d", i)
		}
	}
}

func TestLegalCandidates_FirstMoveMustCoverCorner(t *testing.T) {
	board := domain.NewBoard()
	candidates := Candidates(board, pieceSubset(t, "I1"), 1, EffortFull)

	legal := LegalCandidates(board, candidates, 1, true)
	if len(legal) != 1 {
		t.Fatalf("legal first moves for the monomino = %d, want 1", len(legal))
	}
	if legal[0].Anchor != (domain.Cell{Row: 0, Col: 0}) {
		t.Fatalf("legal first move anchored at %v, want (0,0)", legal[0].Anchor)
	}
}

func TestLegalCandidates_AfterFirstMove(t *testing.T) {
	board := domain.NewBoard()
	board.Place(1, []domain.Cell{{Row: 0, Col: 0}})

	candidates := Candidates(board, pieceSubset(t, "I1"), 1, EffortFull)
	legal := LegalCandidates(board, candidates, 1, false)

	// Only (1,1) touches the existing cell diagonally without edge contact.
	if len(legal) != 1 {
		t.Fatalf("legal moves = %d, want 1", len(legal))
	}
	if legal[0].Anchor != (domain.Cell{Row: 1, Col: 1}) {
		t.Fatalf("legal move anchored at %v, want (1,1)", legal[0].Anchor)
	}
}

func TestCandidateMoveRoundTrip(t *testing.T) {
	board := domain.NewBoard()
	candidates := Candidates(board, pieceSubset(t, "L4"), 3, EffortFull)
	if len(candidates) == 0 {
		t.Fatal("no candidates generated")
	}

	// The cells a Move resolves must match the cells the generator computed,
	// or strategies and the legality engine would disagree.
	for _, c := range candidates[:20] {
		move := c.Move(3)
		cells, ok := move.PlacementCells()
		if !ok {
			t.Fatalf("move %+v did not resolve", move)
		}
		if len(cells) != len(c.Cells) {
			t.Fatalf("cell count mismatch: %d vs %d", len(cells), len(c.Cells))
		}
		want := make(map[domain.Cell]bool, len(c.Cells))
		for _, cell := range c.Cells {
			want[cell] = true
		}
		for _, cell := range cells {
			if !want[cell] {
				t.Fatalf("move resolved cell %v the generator never emitted", cell)
			}
		}
	}
}
