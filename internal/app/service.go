package app

import (
	"errors"
	"fmt"

	"blokus/internal/domain"
)

// Service contains the turn and round coordination use-cases operating on
// domain state. It is the only code that mutates a game: strategies and the
// legality engine read, the service applies.
type Service struct{}

// NewService constructs the coordinator.
func NewService() *Service {
	return &Service{}
}

var (
	ErrNotPlaying    = errors.New("game not in playing phase")
	ErrTooFewPlayers = errors.New("not enough players to start")
	ErrUnknownSeat   = errors.New("seat not found")
	ErrNotYourTurn   = errors.New("not this seat's turn")
	ErrInactive      = errors.New("player is no longer active")
	ErrPieceNotHeld  = errors.New("player does not hold that piece")
	ErrUnknownPiece  = errors.New("unknown piece name")
)

// IllegalMoveError reports a placement the legality engine rejected. It is an
// expected outcome, surfaced to the offending client rather than logged as a
// server fault.
type IllegalMoveError struct {
	Reason domain.InvalidReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal placement: %s", e.Reason)
}

// StartGame initializes a game for the given userIDs in seat order (empty
// strings mean empty seats and are skipped).
func (s *Service) StartGame(userIDs []string) (*domain.Game, []Event, error) {
	var seats []string
	for _, id := range userIDs {
		if id != "" {
			seats = append(seats, id)
		}
	}
	if len(seats) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if len(seats) > MaxPlayers {
		seats = seats[:MaxPlayers]
	}

	game := domain.NewGame(seats)
	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Phase:         game.Phase,
			FirstTurnSeat: 1,
			Seats:         seats,
		},
	}}
	return game, events, nil
}

// PlacePiece validates and applies a placement for the seat, then advances
// the turn. The board write and inventory update happen together; a rejected
// move leaves no trace.
func (s *Service) PlacePiece(game *domain.Game, seat int, move domain.Move) ([]Event, error) {
	player, err := s.actingPlayer(game, seat)
	if err != nil {
		return nil, err
	}
	if !player.HoldsPiece(move.PieceName) {
		if _, known := domain.PieceByName(move.PieceName); !known {
			return nil, ErrUnknownPiece
		}
		return nil, ErrPieceNotHeld
	}

	cells, ok := move.PlacementCells()
	if !ok {
		return nil, ErrUnknownPiece
	}

	firstMove := len(player.Placed) == 0
	if res := domain.ValidateMove(game.Board, seat, cells, firstMove); !res.Valid {
		return nil, &IllegalMoveError{Reason: res.Reason}
	}

	game.Board.Place(seat, cells)
	player.ConsumePiece(move.PieceName, move.Rotation, move.Flip, move.Anchor)
	move.Seat = seat
	game.History = append(game.History, move)

	placed := PiecePlacedPayload{
		Seat:      seat,
		PieceName: move.PieceName,
		Rotation:  move.Rotation,
		Flip:      move.Flip,
		Anchor:    move.Anchor,
		Cells:     cells,
	}
	tail := s.advance(game)
	placed.NextTurnSeat = game.CurrentIndex + 1
	placed.NewRound = containsRoundEnd(tail)

	events := []Event{{Kind: EventPiecePlaced, Payload: placed}}
	return append(events, tail...), nil
}

// PassTurn marks the seat as passed for this round and advances the turn.
func (s *Service) PassTurn(game *domain.Game, seat int) ([]Event, error) {
	player, err := s.actingPlayer(game, seat)
	if err != nil {
		return nil, err
	}

	player.HasPassed = true
	game.History = append(game.History, domain.PassMove(seat))

	passed := TurnPassedPayload{Seat: seat}
	tail := s.advance(game)
	passed.NextTurnSeat = game.CurrentIndex + 1
	passed.NewRound = containsRoundEnd(tail)

	events := []Event{{Kind: EventTurnPassed, Payload: passed}}
	return append(events, tail...), nil
}

// ResignIfCurrent unsticks the turn rotation after a seated player drops out
// mid-game. Marking the player inactive is the caller's job; when the
// resigning seat was on the move the turn advances past it, ending the round
// or the game when nobody else can act.
func (s *Service) ResignIfCurrent(game *domain.Game, seat int) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if game.PlayerAtSeat(seat) == nil {
		return nil, ErrUnknownSeat
	}
	if seat != game.CurrentIndex+1 {
		return nil, nil
	}
	return s.advance(game), nil
}

func (s *Service) actingPlayer(game *domain.Game, seat int) (*domain.Player, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	player := game.PlayerAtSeat(seat)
	if player == nil {
		return nil, ErrUnknownSeat
	}
	if seat != game.CurrentIndex+1 {
		return nil, ErrNotYourTurn
	}
	if !player.Active {
		return nil, ErrInactive
	}
	return player, nil
}

// advance moves the turn to the next eligible player. When nobody is
// eligible the round ends; when the round ends with a finished inventory or
// no active players the game ends. The game-over transition is one-way: once
// taken, no further board or flag mutation happens here.
func (s *Service) advance(game *domain.Game) []Event {
	n := len(game.Players)
	for i := 1; i <= n; i++ {
		idx := (game.CurrentIndex + i) % n
		if domain.Eligible(game.Players[idx]) {
			game.CurrentIndex = idx
			return nil
		}
	}

	// Round over: every active player still holding pieces has passed.
	endedRound := game.Round
	game.Round++
	events := []Event{{Kind: EventRoundEnded, Payload: RoundEndedPayload{Round: endedRound}}}

	if s.shouldEndGame(game) {
		events = append(events, s.endGame(game))
		return events
	}

	// New round: clear pass flags for players still in contention and hand
	// the turn to the first of them.
	for _, p := range game.Players {
		if p.Active && !p.OutOfPieces() {
			p.HasPassed = false
		}
	}
	for idx, p := range game.Players {
		if domain.Eligible(p) {
			game.CurrentIndex = idx
			break
		}
	}
	return events
}

func (s *Service) shouldEndGame(game *domain.Game) bool {
	anyActive := false
	for _, p := range game.Players {
		if !p.Active {
			continue
		}
		anyActive = true
		if p.OutOfPieces() {
			return true
		}
	}
	return !anyActive
}

func (s *Service) endGame(game *domain.Game) Event {
	game.Phase = domain.PhaseGameOver
	domain.ApplyFinalScores(game)

	scores := make(map[string]int, len(game.Players))
	for _, p := range game.Players {
		scores[p.UserID] = p.Score
	}

	var winnerIDs []string
	for _, w := range domain.Winners(game.Players) {
		winnerIDs = append(winnerIDs, w.UserID)
	}

	ranked := domain.RankPlayers(game.Players)
	rankings := make([]RankEntry, len(ranked))
	for i, r := range ranked {
		rankings[i] = RankEntry{
			UserID: r.Player.UserID,
			Seat:   r.Player.Seat,
			Score:  r.Player.Score,
			Rank:   r.Rank,
		}
	}

	return Event{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			Scores:    scores,
			WinnerIDs: winnerIDs,
			Rankings:  rankings,
		},
	}
}

func containsRoundEnd(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventRoundEnded {
			return true
		}
	}
	return false
}
