package internal

import (
	"sort"
	"strconv"
	"strings"

	"blokus/internal/domain"
)

const (
	cacheMaxEntries = 100
	// fingerprintStride samples every 4th cell of every 4th row. Coarse on
	// purpose: the Easy tier trades key precision for lookup speed.
	fingerprintStride = 4
)

// CacheKey identifies a (coarse board, piece set, seat) situation.
type CacheKey string

// Fingerprint builds a cache key from a sampled board state, the sorted
// unplaced piece names and the seat.
func Fingerprint(board *domain.Board, pieces []domain.Piece, seat int) CacheKey {
	var sb strings.Builder
	for row := 0; row < domain.BoardSize; row += fingerprintStride {
		for col := 0; col < domain.BoardSize; col += fingerprintStride {
			sb.WriteByte(byte('0' + board.OccupantAt(domain.Cell{Row: row, Col: col})))
		}
	}

	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.Name
	}
	sort.Strings(names)
	sb.WriteByte('|')
	sb.WriteString(strings.Join(names, ","))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(seat))
	return CacheKey(sb.String())
}

// MoveCache is a bounded candidate-list cache with insertion-order eviction.
// Each strategy instance owns exactly one; it must never be shared between
// players, since keys only disambiguate by the seat baked into them.
type MoveCache struct {
	entries map[CacheKey][]Candidate
	order   []CacheKey
	max     int
}

// NewMoveCache returns an empty cache with the default capacity.
func NewMoveCache() *MoveCache {
	return &MoveCache{
		entries: make(map[CacheKey][]Candidate),
		max:     cacheMaxEntries,
	}
}

// Get returns the cached candidate list for the key, if present.
func (mc *MoveCache) Get(key CacheKey) ([]Candidate, bool) {
	candidates, ok := mc.entries[key]
	return candidates, ok
}

// Put stores a candidate list. Once the cache exceeds its capacity the oldest
// 25% of entries are evicted.
func (mc *MoveCache) Put(key CacheKey, candidates []Candidate) {
	if _, ok := mc.entries[key]; !ok {
		mc.order = append(mc.order, key)
	}
	mc.entries[key] = candidates

	if len(mc.entries) <= mc.max {
		return
	}
	drop := len(mc.order) / 4
	if drop < 1 {
		drop = 1
	}
	for _, old := range mc.order[:drop] {
		delete(mc.entries, old)
	}
	mc.order = mc.order[drop:]
}

// Len returns the number of cached entries.
func (mc *MoveCache) Len() int {
	return len(mc.entries)
}
