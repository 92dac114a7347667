package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"blokus/internal/app"
	"blokus/internal/bot"
	"blokus/internal/domain"
	"blokus/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

type mockLeaderboard struct {
	submissions []ports.ScoreRecord
	boardID     string
}

func (ml *mockLeaderboard) SubmitScores(ctx context.Context, leaderboardID string, records []ports.ScoreRecord) error {
	ml.boardID = leaderboardID
	ml.submissions = append(ml.submissions, records...)
	return nil
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot1, "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot1, bot2, "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot1, "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{bot1, bot2, "", ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{bot1, "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMatchLabel_Marshal(t *testing.T) {
	tests := []struct {
		name     string
		label    *MatchLabel
		expected string
	}{
		{
			name:     "LobbyState",
			label:    &MatchLabel{Open: 3, Game: "blokus", Phase: "lobby"},
			expected: `{"open":3,"game":"blokus","phase":"lobby"}`,
		},
		{
			name:     "PlayingState",
			label:    &MatchLabel{Open: 0, Game: "blokus", Phase: "playing"},
			expected: `{"open":0,"game":"blokus","phase":"playing"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := json.Marshal(test.label)
			if err != nil {
				t.Fatalf("Failed to marshal label: %v", err)
			}
			if string(payload) != test.expected {
				t.Errorf("Got %s, want %s", payload, test.expected)
			}
		})
	}
}

func TestResetTurnSecondsRemainingWithBonus(t *testing.T) {
	handler := &matchHandler{}
	state := &MatchState{}

	handler.resetTurnSecondsRemainingWithBonus(state, noopLogger{}, gameStartTurnTimerBonusSeconds)

	// No config file is loaded in tests, so the default turn duration applies.
	want := int64(60 + gameStartTurnTimerBonusSeconds)
	if state.TurnSecondsRemaining != want {
		t.Fatalf("TurnSecondsRemaining = %d, want %d", state.TurnSecondsRemaining, want)
	}
}

func TestProcessBots_FillsSeatsForSoloHuman(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := &MatchState{
		Seats:                [4]string{"user-1", "", "", ""},
		Presences:            make(map[string]runtime.Presence),
		Bots:                 make(map[string]*bot.Agent),
		BotMinDelay:          1,
		BotMaxDelay:          3,
		BotAutoFillDelay:     2,
		LastSinglePlayerTick: 8,
		Tick:                 10,
	}

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if isBotUserId(seat) {
			botCount++
		}
	}

	if botCount != 3 {
		t.Fatalf("Expected 3 bots after auto-fill, got %d", botCount)
	}
	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("Expected no open seats after auto-fill, got %d", state.GetOpenSeatsCount())
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected match state broadcast and label update after auto-fill")
	}
}

func TestProcessBots_TimerResetsWhenLobbyFills(t *testing.T) {
	handler := &matchHandler{}
	state := &MatchState{
		Seats:                [4]string{"user-1", "user-2", "", ""},
		Presences:            make(map[string]runtime.Presence),
		Bots:                 make(map[string]*bot.Agent),
		BotAutoFillDelay:     2,
		LastSinglePlayerTick: 8,
		Tick:                 10,
	}

	handler.processBots(context.Background(), state, &mockDispatcher{}, noopLogger{})

	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected timer reset with two humans present, got %d", state.LastSinglePlayerTick)
	}
	if state.GetOpenSeatsCount() != 2 {
		t.Fatalf("Expected seats untouched, got %d open", state.GetOpenSeatsCount())
	}
}

func TestBroadcastMatchState_ReportsInventory(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(0).UserID

	svc := app.NewService()
	game, _, err := svc.StartGame([]string{"user-1", botID})
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if _, err := svc.PlacePiece(game, 1, domain.Move{Seat: 1, PieceName: "I1", Anchor: domain.Cell{Row: 0, Col: 0}}); err != nil {
		t.Fatalf("PlacePiece failed: %v", err)
	}

	state := &MatchState{
		Seats:     [4]string{"user-1", botID, "", ""},
		OwnerSeat: 0,
		Tick:      42,
		Presences: make(map[string]runtime.Presence),
		Game:      game,
	}

	handler.broadcastMatchState(state, dispatcher, noopLogger{})

	if dispatcher.lastOpCode != OpPlayerJoined {
		t.Fatalf("Expected opcode %d, got %d", OpPlayerJoined, dispatcher.lastOpCode)
	}

	var snapshot MatchStateSnapshot
	if err := json.Unmarshal(dispatcher.lastData, &snapshot); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}
	if len(snapshot.Players) != 2 {
		t.Fatalf("Expected 2 player states, got %d", len(snapshot.Players))
	}

	remaining := make(map[string]int)
	for _, player := range snapshot.Players {
		remaining[player.UserID] = player.PiecesRemaining
	}
	if remaining["user-1"] != domain.PieceCount-1 {
		t.Fatalf("Expected human to have %d pieces, got %d", domain.PieceCount-1, remaining["user-1"])
	}
	if remaining[botID] != domain.PieceCount {
		t.Fatalf("Expected bot to have %d pieces, got %d", domain.PieceCount, remaining[botID])
	}
	if !snapshot.Players[0].IsOwner {
		t.Fatalf("Expected seat 0 to be the owner")
	}
}

func TestMoveFromRequest(t *testing.T) {
	move, err := moveFromRequest(2, PlacePieceRequest{
		Piece:    "L4",
		Rotation: 270,
		Flip:     true,
		Anchor:   wireCell{Row: 3, Col: 17},
	})
	if err != nil {
		t.Fatalf("moveFromRequest failed: %v", err)
	}
	if move.Seat != 2 || move.PieceName != "L4" || move.Rotation != domain.Rotate270 || !move.Flip {
		t.Fatalf("moveFromRequest = %+v", move)
	}
	if move.Anchor != (domain.Cell{Row: 3, Col: 17}) {
		t.Fatalf("anchor = %+v", move.Anchor)
	}

	if _, err := moveFromRequest(2, PlacePieceRequest{Piece: "L4", Rotation: 45}); err == nil {
		t.Fatal("Expected error for rotation 45")
	}
}

func TestSubmitScores_SkipsBots(t *testing.T) {
	handler := &matchHandler{}
	board := &mockLeaderboard{}
	botID := bot.GetBotIdentity(0).UserID
	state := &MatchState{Leaderboard: board}

	handler.submitScores(context.Background(), state, noopLogger{}, app.GameEndedPayload{
		Rankings: []app.RankEntry{
			{UserID: "user-1", Seat: 1, Score: -12, Rank: 1},
			{UserID: botID, Seat: 2, Score: -30, Rank: 2},
		},
	})

	if len(board.submissions) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(board.submissions))
	}
	if board.submissions[0].UserID != "user-1" || board.submissions[0].Score != -12 {
		t.Fatalf("Unexpected submission %+v", board.submissions[0])
	}
	if board.boardID == "" {
		t.Fatal("Expected a leaderboard id to be passed through")
	}
}
