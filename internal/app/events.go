package app

import "blokus/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventPiecePlaced EventKind = "piece_placed"
	EventTurnPassed  EventKind = "turn_passed"
	EventRoundEnded  EventKind = "round_ended"
	EventGameEnded   EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	Phase         domain.Phase
	FirstTurnSeat int
	Seats         []string
}

type PiecePlacedPayload struct {
	Seat         int
	PieceName    string
	Rotation     domain.Rotation
	Flip         bool
	Anchor       domain.Cell
	Cells        []domain.Cell
	NextTurnSeat int
	NewRound     bool
}

type TurnPassedPayload struct {
	Seat         int
	NextTurnSeat int
	NewRound     bool
}

type RoundEndedPayload struct {
	Round int
}

// RankEntry reports one player's final standing.
type RankEntry struct {
	UserID string
	Seat   int
	Score  int
	Rank   int
}

type GameEndedPayload struct {
	Scores    map[string]int
	WinnerIDs []string
	Rankings  []RankEntry
}
