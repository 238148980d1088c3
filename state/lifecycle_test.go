package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/network"
)

type mockPlayer struct {
	id    string
	name  string
	ready bool
}

func (p *mockPlayer) GetID() string       { return p.id }
func (p *mockPlayer) GetName() string     { return p.name }
func (p *mockPlayer) IsReady() bool       { return p.ready }
func (p *mockPlayer) SetReady(ready bool) { p.ready = ready }

// mockRoom implements RoomContext without the network or timer layers.
// Scheduled timer callbacks are captured so tests can fire them by hand.
type mockRoom struct {
	id         string
	engine     *game.Engine
	players    map[string]Player
	current    State
	sent       map[string][]uint16
	broadcasts []uint16
	settled    [][]game.PlayerScore
	timeout    time.Duration
	scheduled  []func()
}

func (r *mockRoom) GetID() string              { return r.id }
func (r *mockRoom) GetMinPlayers() int         { return 2 }
func (r *mockRoom) GetMaxPlayers() int         { return 5 }
func (r *mockRoom) Engine() *game.Engine       { return r.engine }
func (r *mockRoom) GameID() string             { return r.id }
func (r *mockRoom) TurnTimeout() time.Duration { return r.timeout }
func (r *mockRoom) CancelTimer(id int64)       {}

func (r *mockRoom) ScheduleTimer(delay time.Duration, fn func()) int64 {
	r.scheduled = append(r.scheduled, fn)
	return int64(len(r.scheduled))
}

func (r *mockRoom) GetPlayers() map[string]Player {
	players := make(map[string]Player, len(r.players))
	for k, v := range r.players {
		players[k] = v
	}
	return players
}

func (r *mockRoom) ChangeState(newState State) error {
	if r.current != nil {
		r.current.OnExit()
	}
	r.current = newState
	r.current.OnEnter()
	return nil
}

func (r *mockRoom) Broadcast(msgID uint16, data []byte) error {
	r.broadcasts = append(r.broadcasts, msgID)
	return nil
}

func (r *mockRoom) SendTo(playerID string, msgID uint16, data []byte) error {
	r.sent[playerID] = append(r.sent[playerID], msgID)
	return nil
}

func (r *mockRoom) StartMatch() error {
	seats := []game.Seat{
		{PlayerID: "alice", Name: "Alice"},
		{PlayerID: "bob", Name: "Bob"},
	}
	_, err := r.engine.CreateSession(r.id, game.DefaultBoard(), seats, 7)
	return err
}

func (r *mockRoom) FinishMatch(scores []game.PlayerScore) {
	r.settled = append(r.settled, scores)
}

func newMatchRoom(t *testing.T) *mockRoom {
	t.Helper()
	r := &mockRoom{
		id:     "match1",
		engine: game.NewEngine(game.NewMemoryStore()),
		players: map[string]Player{
			"alice": &mockPlayer{id: "alice", name: "Alice"},
			"bob":   &mockPlayer{id: "bob", name: "Bob"},
		},
		sent: make(map[string][]uint16),
	}
	if err := r.StartMatch(); err != nil {
		t.Fatalf("StartMatch failed: %v", err)
	}
	return r
}

func confirmInitial(t *testing.T, r *mockRoom, draft *TicketDraftState, playerID string) {
	t.Helper()
	tickets, err := r.engine.PreviewTickets(r.id, playerID)
	if err != nil {
		t.Fatalf("no initial offer for %s: %v", playerID, err)
	}
	kept := []string{tickets[0].ID, tickets[1].ID}
	data, _ := json.Marshal(Action{Type: ActionConfirmTickets, TicketIDs: kept})
	if err := draft.HandleAction(r.players[playerID], data); err != nil {
		t.Fatalf("confirm for %s failed: %v", playerID, err)
	}
}

func sentContains(msgs []uint16, msgID uint16) bool {
	for _, id := range msgs {
		if id == msgID {
			return true
		}
	}
	return false
}

func TestTicketDraftSendsOffersAndStartsMatch(t *testing.T) {
	r := newMatchRoom(t)
	draft := NewTicketDraftState(r)
	r.current = draft
	draft.OnEnter()

	for _, id := range []string{"alice", "bob"} {
		if !sentContains(r.sent[id], network.MsgTypeTicketOffer) {
			t.Errorf("Expected %s to receive a ticket offer", id)
		}
	}

	confirmInitial(t, r, draft, "alice")
	if r.current.GetID() != "ticket_draft" {
		t.Fatal("Draft must wait for every player's selection")
	}
	if !r.players["alice"].IsReady() {
		t.Error("Expected alice to be marked ready after confirming")
	}

	confirmInitial(t, r, draft, "bob")
	if r.current.GetID() != "playing" {
		t.Fatalf("Expected playing state after all confirmations, got %s", r.current.GetID())
	}
	if !sentContains(r.broadcasts, network.MsgTypeTurnChanged) {
		t.Error("Expected a turn announcement when play begins")
	}
}

func enterPlaying(t *testing.T) (*mockRoom, *PlayingState) {
	t.Helper()
	r := newMatchRoom(t)
	draft := NewTicketDraftState(r)
	r.current = draft
	draft.OnEnter()
	confirmInitial(t, r, draft, "alice")
	confirmInitial(t, r, draft, "bob")

	playing, ok := r.current.(*PlayingState)
	if !ok {
		t.Fatalf("Expected playing state, got %s", r.current.GetID())
	}
	return r, playing
}

func TestPlayingRejectsOutOfTurnAction(t *testing.T) {
	r, playing := enterPlaying(t)

	current, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	other := "bob"
	if current == "bob" {
		other = "alice"
	}

	data, _ := json.Marshal(Action{Type: ActionDrawClosed})
	err = playing.HandleAction(r.players[other], data)
	if game.RejectionReason(err) != game.ReasonOutOfTurn {
		t.Fatalf("Expected OUT_OF_TURN rejection, got %v", err)
	}
	if !sentContains(r.sent[other], network.MsgTypeActionResult) {
		t.Error("Rejected player must still receive an action result")
	}
}

func TestPlayingAdvancesTurnAfterDrawQuota(t *testing.T) {
	r, playing := enterPlaying(t)

	first, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}

	data, _ := json.Marshal(Action{Type: ActionDrawClosed})
	for i := 0; i < 2; i++ {
		if err := playing.HandleAction(r.players[first], data); err != nil {
			t.Fatalf("draw %d failed: %v", i+1, err)
		}
	}

	next, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	if next == first {
		t.Error("Turn should pass to the next seat after the draw quota")
	}
	if !sentContains(r.broadcasts, network.MsgTypeGameSync) {
		t.Error("Accepted actions must broadcast the public game view")
	}
}

// drawTwice completes one full turn for the given player.
func drawTwice(t *testing.T, r *mockRoom, playing *PlayingState, playerID string) {
	t.Helper()
	data, _ := json.Marshal(Action{Type: ActionDrawClosed})
	for i := 0; i < 2; i++ {
		if err := playing.HandleAction(r.players[playerID], data); err != nil {
			t.Fatalf("draw %d for %s failed: %v", i+1, playerID, err)
		}
	}
}

func TestFinalRoundGivesTriggerPlayerOneLastTurn(t *testing.T) {
	r, playing := enterPlaying(t)

	trigger, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	other := "bob"
	if trigger == "bob" {
		other = "alice"
	}

	// Put the acting player one claim away from the train threshold.
	sess, err := r.engine.Session(r.id)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range sess.Players {
		if p.ID == trigger {
			p.Trains = 3
			p.Hand = []game.Card{{Color: game.ColorOrange}, {Color: game.ColorOrange}}
		}
	}

	claim, _ := json.Marshal(Action{Type: ActionClaimRoute, RouteID: "r17", Cards: []string{"orange", "orange"}})
	if err := playing.HandleAction(r.players[trigger], claim); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if !sentContains(r.broadcasts, network.MsgTypeFinalRound) {
		t.Fatal("Expected the final round to be announced")
	}

	drawTwice(t, r, playing, other)
	if r.current.GetID() != "playing" {
		t.Fatal("Match must not settle before the triggering player's last turn")
	}
	current, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	if current != trigger {
		t.Fatalf("Expected the triggering player %s to act once more, current is %s", trigger, current)
	}

	drawTwice(t, r, playing, trigger)
	if r.current.GetID() != "settlement" {
		t.Fatalf("Expected settlement after the full final round, got %s", r.current.GetID())
	}
	if len(r.settled) != 1 {
		t.Errorf("Expected one settled scoreboard, got %d", len(r.settled))
	}
}

func TestStaleTurnTimeoutDoesNotSkipNextPlayer(t *testing.T) {
	r := newMatchRoom(t)
	r.timeout = time.Minute
	draft := NewTicketDraftState(r)
	r.current = draft
	draft.OnEnter()
	confirmInitial(t, r, draft, "alice")
	confirmInitial(t, r, draft, "bob")

	playing, ok := r.current.(*PlayingState)
	if !ok {
		t.Fatalf("Expected playing state, got %s", r.current.GetID())
	}
	if len(r.scheduled) != 1 {
		t.Fatalf("Expected one armed turn timer, got %d", len(r.scheduled))
	}
	staleTimeout := r.scheduled[0]

	first, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	drawTwice(t, r, playing, first)

	second, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Fatal("Setup failed: turn did not pass")
	}

	// The first turn's timeout fires after that turn already ended.
	staleTimeout()

	current, err := r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	if current != second {
		t.Fatalf("Stale timeout skipped %s's turn, current is %s", second, current)
	}
	if done, _ := r.engine.TurnCompleted(r.id); done {
		t.Error("Stale timeout must not force-complete the fresh turn")
	}

	// The timer armed for the fresh turn still skips a stalled player.
	liveTimeout := r.scheduled[len(r.scheduled)-1]
	liveTimeout()

	current, err = r.engine.CurrentPlayer(r.id)
	if err != nil {
		t.Fatal(err)
	}
	if current != first {
		t.Fatalf("Expected the live timeout to pass the turn to %s, current is %s", first, current)
	}
}

func TestSettlementBroadcastsScoreboard(t *testing.T) {
	r := newMatchRoom(t)

	settlement := NewSettlementState(r)
	r.current = settlement
	settlement.OnEnter()

	if len(r.settled) != 1 {
		t.Fatalf("Expected one settled scoreboard, got %d", len(r.settled))
	}
	if len(r.settled[0]) != 2 {
		t.Errorf("Expected 2 scored players, got %d", len(r.settled[0]))
	}
	if !sentContains(r.broadcasts, network.MsgTypeScoreboard) {
		t.Error("Expected scoreboard broadcast")
	}
	if !sentContains(r.broadcasts, network.MsgTypeGameEnd) {
		t.Error("Expected game end broadcast")
	}
}
