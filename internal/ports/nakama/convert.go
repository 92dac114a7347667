package nakama

import (
	"fmt"

	"blokus/internal/app"
	"blokus/internal/domain"
)

// Wire types for client messages and server events. Everything crossing the
// Nakama dispatcher is JSON so web and Unity clients can share one codec.

// MatchLabel is the JSON match label used by matchmaking queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type wireCell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlacePieceRequest is the client payload for OpPlacePiece.
type PlacePieceRequest struct {
	Piece    string   `json:"piece"`
	Rotation int      `json:"rotation"`
	Flip     bool     `json:"flip"`
	Anchor   wireCell `json:"anchor"`
}

// PlayerState is one seat's entry in a MatchStateSnapshot.
type PlayerState struct {
	UserID          string `json:"user_id"`
	Seat            int    `json:"seat"`
	IsOwner         bool   `json:"is_owner"`
	PiecesRemaining int    `json:"pieces_remaining"`
	CellsRemaining  int    `json:"cells_remaining"`
	DisplayName     string `json:"display_name"`
	AvatarIndex     int    `json:"avatar_index"`
}

// MatchStateSnapshot is broadcast whenever seat occupancy changes.
type MatchStateSnapshot struct {
	Seats     []string      `json:"seats"`
	OwnerSeat int           `json:"owner_seat"`
	Tick      int64         `json:"tick"`
	Players   []PlayerState `json:"players"`
}

type GameStartedMessage struct {
	Phase         string   `json:"phase"`
	FirstTurnSeat int      `json:"first_turn_seat"`
	Seats         []string `json:"seats"`
}

type PiecePlacedMessage struct {
	Seat         int        `json:"seat"`
	Piece        string     `json:"piece"`
	Rotation     int        `json:"rotation"`
	Flip         bool       `json:"flip"`
	Anchor       wireCell   `json:"anchor"`
	Cells        []wireCell `json:"cells"`
	NextTurnSeat int        `json:"next_turn_seat"`
	NewRound     bool       `json:"new_round"`
}

type TurnPassedMessage struct {
	Seat         int  `json:"seat"`
	NextTurnSeat int  `json:"next_turn_seat"`
	NewRound     bool `json:"new_round"`
}

type RoundEndedMessage struct {
	Round int `json:"round"`
}

type RankEntryMessage struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}

type GameEndedMessage struct {
	Scores   map[string]int     `json:"scores"`
	Winners  []string           `json:"winners"`
	Rankings []RankEntryMessage `json:"rankings"`
}

type GameErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func cellsToWire(cells []domain.Cell) []wireCell {
	out := make([]wireCell, len(cells))
	for i, c := range cells {
		out[i] = wireCell{Row: c.Row, Col: c.Col}
	}
	return out
}

// moveFromRequest validates a client placement request and converts it to a
// domain move for the given seat.
func moveFromRequest(seat int, req PlacePieceRequest) (domain.Move, error) {
	rotation := domain.Rotation(req.Rotation)
	switch rotation {
	case domain.Rotate0, domain.Rotate90, domain.Rotate180, domain.Rotate270:
	default:
		return domain.Move{}, fmt.Errorf("invalid rotation %d", req.Rotation)
	}

	return domain.Move{
		Seat:      seat,
		PieceName: req.Piece,
		Rotation:  rotation,
		Flip:      req.Flip,
		Anchor:    domain.Cell{Row: req.Anchor.Row, Col: req.Anchor.Col},
	}, nil
}

// eventToMessage maps an app event to its opcode and wire payload.
func eventToMessage(ev app.Event) (int64, interface{}, bool) {
	switch ev.Kind {
	case app.EventGameStarted:
		p := ev.Payload.(app.GameStartedPayload)
		return OpGameStarted, GameStartedMessage{
			Phase:         string(p.Phase),
			FirstTurnSeat: p.FirstTurnSeat,
			Seats:         p.Seats,
		}, true
	case app.EventPiecePlaced:
		p := ev.Payload.(app.PiecePlacedPayload)
		return OpPiecePlaced, PiecePlacedMessage{
			Seat:         p.Seat,
			Piece:        p.PieceName,
			Rotation:     int(p.Rotation),
			Flip:         p.Flip,
			Anchor:       wireCell{Row: p.Anchor.Row, Col: p.Anchor.Col},
			Cells:        cellsToWire(p.Cells),
			NextTurnSeat: p.NextTurnSeat,
			NewRound:     p.NewRound,
		}, true
	case app.EventTurnPassed:
		p := ev.Payload.(app.TurnPassedPayload)
		return OpTurnPassed, TurnPassedMessage{
			Seat:         p.Seat,
			NextTurnSeat: p.NextTurnSeat,
			NewRound:     p.NewRound,
		}, true
	case app.EventRoundEnded:
		p := ev.Payload.(app.RoundEndedPayload)
		return OpRoundEnded, RoundEndedMessage{Round: p.Round}, true
	case app.EventGameEnded:
		p := ev.Payload.(app.GameEndedPayload)
		rankings := make([]RankEntryMessage, len(p.Rankings))
		for i, r := range p.Rankings {
			rankings[i] = RankEntryMessage{
				UserID: r.UserID,
				Seat:   r.Seat,
				Score:  r.Score,
				Rank:   r.Rank,
			}
		}
		return OpGameEnded, GameEndedMessage{
			Scores:   p.Scores,
			Winners:  p.WinnerIDs,
			Rankings: rankings,
		}, true
	default:
		return 0, nil, false
	}
}
