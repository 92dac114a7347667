package internal

import (
	"fmt"
	"testing"

	"blokus/internal/domain"
)

func TestFingerprintDisambiguates(t *testing.T) {
	board := domain.NewBoard()
	pieces := domain.NewPieceSet()

	base := Fingerprint(board, pieces, 1)
	if Fingerprint(board, pieces, 2) == base {
		t.Fatal("fingerprint must include the seat")
	}
	if Fingerprint(board, pieces[:5], 1) == base {
		t.Fatal("fingerprint must include the piece set")
	}

	// Occupancy on a sampled cell changes the key.
	board.Place(1, []domain.Cell{{Row: 4, Col: 8}})
	if Fingerprint(board, pieces, 1) == base {
		t.Fatal("fingerprint must reflect sampled board cells")
	}
}

func TestFingerprintIsCoarse(t *testing.T) {
	// Cells off the 4-stride sampling grid do not affect the key. That is
	// the documented Easy-tier trade-off, not a bug.
	board := domain.NewBoard()
	pieces := domain.NewPieceSet()
	base := Fingerprint(board, pieces, 1)

	board.Place(1, []domain.Cell{{Row: 1, Col: 1}})
	if Fingerprint(board, pieces, 1) != base {
		t.Fatal("unsampled cell changed the fingerprint")
	}
}

func TestMoveCachePutGet(t *testing.T) {
	cache := NewMoveCache()
	key := CacheKey("k1")
	candidates := []Candidate{{Piece: domain.Piece{Name: "I1"}}}

	if _, ok := cache.Get(key); ok {
		t.Fatal("empty cache reported a hit")
	}
	cache.Put(key, candidates)
	got, ok := cache.Get(key)
	if !ok || len(got) != 1 || got[0].Piece.Name != "I1" {
		t.Fatalf("cache returned %v, %v", got, ok)
	}
}

func TestMoveCacheEvictsOldestQuarter(t *testing.T) {
	cache := NewMoveCache()
	for i := 0; i < 101; i++ {
		cache.Put(CacheKey(fmt.Sprintf("k%03d", i)), nil)
	}

	// Exceeding 100 entries drops the oldest 25%.
	if cache.Len() != 76 {
		t.Fatalf("cache size after eviction = %d, want 76", cache.Len())
	}
	if _, ok := cache.Get(CacheKey("k000")); ok {
		t.Fatal("oldest entry survived eviction")
	}
	if _, ok := cache.Get(CacheKey("k100")); !ok {
		t.Fatal("newest entry was evicted")
	}
}
