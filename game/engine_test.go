package game

import (
	"errors"
	"testing"
)

func newTestEngine(t *testing.T) (*Engine, *Session) {
	t.Helper()
	e := NewEngine(NewMemoryStore())
	s, err := e.CreateSession("match1", DefaultBoard(), []Seat{
		{PlayerID: "alice", Name: "Alice"},
		{PlayerID: "bob", Name: "Bob"},
	}, 21)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return e, s
}

func TestEngineCreateSession(t *testing.T) {
	e, s := newTestEngine(t)
	if e.ActiveSessions() != 1 {
		t.Errorf("expected 1 active session, got %d", e.ActiveSessions())
	}
	if len(s.Players) != 2 {
		t.Fatalf("expected 2 seated players, got %d", len(s.Players))
	}
	if s.Players[0].Color == s.Players[1].Color {
		t.Error("seat colors must be unique")
	}
	for _, p := range s.Players {
		if p.Trains != 45 {
			t.Errorf("player %s should start with 45 trains, got %d", p.ID, p.Trains)
		}
		if len(p.Hand) != 4 {
			t.Errorf("player %s should start with 4 cards, got %d", p.ID, len(p.Hand))
		}
	}

	pending, err := e.PendingInitialOffers("match1")
	if err != nil {
		t.Fatal(err)
	}
	if pending != 2 {
		t.Errorf("both players should owe their initial selection, got %d", pending)
	}
}

func TestEngineDuplicateSessionRejected(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.CreateSession("match1", DefaultBoard(), []Seat{
		{PlayerID: "x"}, {PlayerID: "y"},
	}, 1)
	if !errors.Is(err, ErrSessionExists) {
		t.Errorf("expected ErrSessionExists, got %v", err)
	}
}

func TestEngineUnknownSession(t *testing.T) {
	e := NewEngine(NewMemoryStore())
	_, err := e.DrawClosedCard("ghost", "alice")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEngineTurnHandoff(t *testing.T) {
	e, _ := newTestEngine(t)

	current, err := e.CurrentPlayer("match1")
	if err != nil {
		t.Fatal(err)
	}
	if current != "alice" {
		t.Fatalf("expected alice to open, got %s", current)
	}

	if _, err := e.DrawClosedCard("match1", "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.DrawClosedCard("match1", "alice"); err != nil {
		t.Fatal(err)
	}
	done, err := e.TurnCompleted("match1")
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("turn should be complete after two closed draws")
	}

	next, err := e.BeginNextTurn("match1")
	if err != nil {
		t.Fatal(err)
	}
	if next != "bob" {
		t.Errorf("expected bob next, got %s", next)
	}
	if _, err := e.DrawClosedCard("match1", "bob"); err != nil {
		t.Errorf("bob should be able to act on his turn: %v", err)
	}
}

func TestEngineForceCompleteTurn(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.ForceCompleteTurn("match1"); err != nil {
		t.Fatal(err)
	}
	_, err := e.DrawClosedCard("match1", "alice")
	expectReason(t, err, ReasonTurnAlreadyUsed)

	next, err := e.BeginNextTurn("match1")
	if err != nil {
		t.Fatal(err)
	}
	if next != "bob" {
		t.Errorf("expected bob after the skipped turn, got %s", next)
	}
}

func TestEngineRoundRobinWrapsAround(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, err := e.BeginNextTurn("match1"); err != nil {
		t.Fatal(err)
	}
	next, err := e.BeginNextTurn("match1")
	if err != nil {
		t.Fatal(err)
	}
	if next != "alice" {
		t.Errorf("turn order should wrap back to alice, got %s", next)
	}
}

func TestEngineFinalScoreIdempotent(t *testing.T) {
	e, s := newTestEngine(t)
	s.Players[0].RoutePoints = 7
	s.Claimed["r20"] = "alice"

	first, err := e.ComputeFinalScore("match1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.ComputeFinalScore("match1")
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatal("scoreboard size changed between calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("scoreboard line %d changed: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEngineCloseSession(t *testing.T) {
	e, _ := newTestEngine(t)
	e.CloseSession("match1")
	if e.ActiveSessions() != 0 {
		t.Errorf("expected 0 active sessions, got %d", e.ActiveSessions())
	}
}

func TestMemoryStoreBasics(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	s := &Session{ID: "a"}
	if err := store.Put(s); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(s); !errors.Is(err, ErrSessionExists) {
		t.Errorf("expected ErrSessionExists, got %v", err)
	}
	got, err := store.Get("a")
	if err != nil || got != s {
		t.Error("Get should return the stored session")
	}
	store.Delete("a")
	if store.Count() != 0 {
		t.Error("Delete should drop the session")
	}
}
