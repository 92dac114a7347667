package domain

import "testing"

func TestValidateMove_FirstMoveCornerRequirement(t *testing.T) {
	board := NewBoard()

	tests := []struct {
		name  string
		cells []Cell
		want  bool
	}{
		{name: "covers assigned corner", cells: []Cell{{0, 0}, {0, 1}}, want: true},
		{name: "misses assigned corner", cells: []Cell{{5, 5}, {5, 6}}, want: false},
		{name: "covers another seat's corner", cells: []Cell{{0, 18}, {0, 19}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateMove(board, 1, tt.cells, true)
			if res.Valid != tt.want {
				t.Fatalf("ValidateMove() valid = %v, want %v (reason %v)", res.Valid, tt.want, res.Reason)
			}
			if !tt.want && res.Reason != ReasonMissingStartingCorner {
				t.Fatalf("reason = %v, want missing starting corner", res.Reason)
			}
		})
	}
}

func TestValidateMove_CornerRuleEnforcement(t *testing.T) {
	// Seat 2 owns the single cell (5,5). Diagonal contact is mandatory,
	// edge contact forbidden, overlap reported as occupancy.
	board := NewBoard()
	board.Place(2, []Cell{{5, 5}})

	tests := []struct {
		name       string
		cells      []Cell
		wantValid  bool
		wantReason InvalidReason
	}{
		{
			name:      "diagonal contact only",
			cells:     []Cell{{6, 6}, {6, 7}},
			wantValid: true,
		},
		{
			name:       "edge contact with own cell",
			cells:      []Cell{{5, 6}, {5, 7}},
			wantReason: ReasonEdgeAdjacency,
		},
		{
			name:       "overlaps own cell",
			cells:      []Cell{{5, 5}, {5, 6}},
			wantReason: ReasonOverlap,
		},
		{
			name:       "no contact at all",
			cells:      []Cell{{15, 15}, {15, 16}},
			wantReason: ReasonMissingCornerConnection,
		},
		{
			name:       "out of bounds",
			cells:      []Cell{{19, 19}, {19, 20}},
			wantReason: ReasonOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateMove(board, 2, tt.cells, false)
			if res.Valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v (reason %v)", res.Valid, tt.wantValid, res.Reason)
			}
			if !tt.wantValid && res.Reason != tt.wantReason {
				t.Fatalf("reason = %v, want %v", res.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateMove_OpponentEdgeContactPermitted(t *testing.T) {
	// Seat 1 has pieces at its corner; seat 2's cells sit right next to the
	// candidate. Edge contact with an opponent must not invalidate the move.
	board := NewBoard()
	board.Place(1, []Cell{{0, 0}})
	board.Place(2, []Cell{{1, 2}})

	// Candidate for seat 1: diagonal to own (0,0), edge-adjacent to opponent (1,2).
	res := ValidateMove(board, 1, []Cell{{1, 1}, {2, 1}}, false)
	if !res.Valid {
		t.Fatalf("edge contact with opponent rejected: %v", res.Reason)
	}
}

func TestValidateMove_OrderOfChecks(t *testing.T) {
	// Overlap must be reported before adjacency when both apply.
	board := NewBoard()
	board.Place(3, []Cell{{10, 10}})

	res := ValidateMove(board, 3, []Cell{{10, 10}}, false)
	if res.Valid || res.Reason != ReasonOverlap {
		t.Fatalf("got %+v, want overlap", res)
	}
}

func TestStartingCorner(t *testing.T) {
	tests := []struct {
		seat int
		want Cell
	}{
		{1, Cell{0, 0}},
		{2, Cell{0, 19}},
		{3, Cell{19, 19}},
		{4, Cell{19, 0}},
	}
	for _, tt := range tests {
		if got := StartingCorner(tt.seat); got != tt.want {
			t.Fatalf("StartingCorner(%d) = %v, want %v", tt.seat, got, tt.want)
		}
	}
}
