package game

import (
	"testing"
)

// newTicketSession builds a session with the initial offers dealt, the
// way Engine.CreateSession does.
func newTicketSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t)
	s.offerInitialTickets()
	return s
}

func ticketIDs(tickets []Ticket) []string {
	ids := make([]string, len(tickets))
	for i, tk := range tickets {
		ids[i] = tk.ID
	}
	return ids
}

func TestInitialOfferDealtToEverySeat(t *testing.T) {
	s := newTicketSession(t)
	for _, p := range s.Players {
		offer, ok := s.Offers[p.ID]
		if !ok {
			t.Fatalf("player %s has no initial offer", p.ID)
		}
		if offer.Context != TicketInitial {
			t.Errorf("expected initial context, got %s", offer.Context)
		}
		if len(offer.Tickets) != 3 {
			t.Errorf("expected 3 offered tickets, got %d", len(offer.Tickets))
		}
		if offer.MinKeep != 2 {
			t.Errorf("initial deal min keep should be 2, got %d", offer.MinKeep)
		}
	}
}

func TestInitialKeepOneRejected(t *testing.T) {
	s := newTicketSession(t)
	offer := s.Offers["alice"]
	poolBefore := s.Deck.TicketsRemaining()

	_, err := s.confirmTickets("alice", ticketIDs(offer.Tickets)[:1], TicketInitial)
	expectReason(t, err, ReasonSelectionBounds)

	if s.Offers["alice"] == nil {
		t.Error("rejected selection must keep the offer pending")
	}
	if len(s.Players[0].Tickets) != 0 {
		t.Error("rejected selection must not move tickets")
	}
	if s.Deck.TicketsRemaining() != poolBefore {
		t.Error("rejected selection must not touch the pool")
	}
}

func TestInitialKeepTwoAccepted(t *testing.T) {
	s := newTicketSession(t)
	offer := s.Offers["alice"]
	poolBefore := s.Deck.TicketsRemaining()

	res, err := s.confirmTickets("alice", ticketIDs(offer.Tickets)[:2], TicketInitial)
	if err != nil {
		t.Fatalf("keeping 2 of 3 should be accepted: %v", err)
	}
	if len(res.Kept) != 2 || res.Returned != 1 {
		t.Errorf("expected 2 kept / 1 returned, got %d / %d", len(res.Kept), res.Returned)
	}
	if res.TurnCompleted {
		t.Error("the initial deal does not consume a turn")
	}
	if len(s.Players[0].Tickets) != 2 {
		t.Errorf("expected 2 held tickets, got %d", len(s.Players[0].Tickets))
	}
	if s.Deck.TicketsRemaining() != poolBefore+1 {
		t.Error("the declined ticket should return to the pool")
	}
	if _, pending := s.Offers["alice"]; pending {
		t.Error("offer should be resolved")
	}
}

func TestInitialKeepAllAccepted(t *testing.T) {
	s := newTicketSession(t)
	offer := s.Offers["alice"]
	if _, err := s.confirmTickets("alice", ticketIDs(offer.Tickets), TicketInitial); err != nil {
		t.Fatalf("keeping all 3 should be accepted: %v", err)
	}
}

func TestMidgameKeepOneCompletesTurn(t *testing.T) {
	s := newTestSession(t)
	offer, err := s.offerMidgameTickets("alice")
	if err != nil {
		t.Fatalf("midgame offer failed: %v", err)
	}
	if offer.MinKeep != 1 {
		t.Errorf("midgame min keep should be 1, got %d", offer.MinKeep)
	}

	res, err := s.confirmTickets("alice", ticketIDs(offer.Tickets)[:1], TicketMidgame)
	if err != nil {
		t.Fatalf("keeping 1 should be accepted: %v", err)
	}
	if !res.TurnCompleted {
		t.Error("a mid-game ticket purchase completes the turn")
	}
	if res.NextPlayer != "bob" {
		t.Errorf("expected next player bob, got %q", res.NextPlayer)
	}
}

func TestMidgameKeepZeroRejected(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.offerMidgameTickets("alice"); err != nil {
		t.Fatal(err)
	}
	_, err := s.confirmTickets("alice", nil, TicketMidgame)
	expectReason(t, err, ReasonSelectionBounds)
	if s.Turn.Completed() {
		t.Error("rejected selection must not complete the turn")
	}
}

func TestMidgameOfferOutOfTurnRejected(t *testing.T) {
	s := newTestSession(t)
	_, err := s.offerMidgameTickets("bob")
	expectReason(t, err, ReasonOutOfTurn)
}

func TestMidgameOfferIdempotentWhilePending(t *testing.T) {
	s := newTestSession(t)
	first, err := s.offerMidgameTickets("alice")
	if err != nil {
		t.Fatal(err)
	}
	poolAfterFirst := s.Deck.TicketsRemaining()

	second, err := s.offerMidgameTickets("alice")
	if err != nil {
		t.Fatalf("re-requesting a pending offer should not fail: %v", err)
	}
	if second != first {
		t.Error("re-requesting should return the same pending offer")
	}
	if s.Deck.TicketsRemaining() != poolAfterFirst {
		t.Error("re-requesting must not draw more tickets")
	}
}

func TestPreviewTicketsDoesNotMutate(t *testing.T) {
	s := newTicketSession(t)
	poolBefore := s.Deck.TicketsRemaining()

	first, err := s.previewTickets("alice")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	second, err := s.previewTickets("alice")
	if err != nil {
		t.Fatalf("second preview failed: %v", err)
	}
	if len(first) != len(second) {
		t.Error("preview should be stable")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Error("preview should return the same offer each time")
		}
	}
	if s.Deck.TicketsRemaining() != poolBefore {
		t.Error("preview must not touch the ticket pool")
	}
}

func TestConfirmWithoutOfferRejected(t *testing.T) {
	s := newTestSession(t)
	_, err := s.confirmTickets("alice", []string{"t01"}, TicketMidgame)
	expectReason(t, err, ReasonNoTicketOffer)
}

func TestConfirmUnknownTicketRejected(t *testing.T) {
	s := newTicketSession(t)
	_, err := s.confirmTickets("alice", []string{"nope", "nope2"}, TicketInitial)
	expectReason(t, err, ReasonUnknownTicket)
}

func TestConfirmWrongContextRejected(t *testing.T) {
	s := newTicketSession(t)
	offer := s.Offers["alice"]
	_, err := s.confirmTickets("alice", ticketIDs(offer.Tickets)[:2], TicketMidgame)
	expectReason(t, err, ReasonNoTicketOffer)
}

func TestTicketPoolExhaustedRejected(t *testing.T) {
	s := newTestSession(t)
	s.Deck.tickets = nil
	_, err := s.offerMidgameTickets("alice")
	expectReason(t, err, ReasonTicketsExhausted)
	if s.Turn.Phase != PhaseAwaiting {
		t.Error("a failed offer must not start the action")
	}
}
