package game

// Ticket selection validation. Two call sites share one minimum/maximum
// contract: the pre-game deal (keep 2..3 of 3, no turn consumed) and
// the in-turn purchase (keep 1..offered, completes the turn).

// TicketResult reports an accepted ticket confirmation.
type TicketResult struct {
	Kept          []Ticket `json:"kept"`
	Returned      int      `json:"returned"`
	TurnCompleted bool     `json:"turn_completed"`
	NextPlayer    string   `json:"next_player,omitempty"`
}

// offerInitialTickets deals the pre-game ticket offer to every seat.
// Called once, before play proper begins; consumes no turn.
func (s *Session) offerInitialTickets() {
	for _, p := range s.Players {
		if _, pending := s.Offers[p.ID]; pending {
			continue
		}
		tickets := s.Deck.DrawTickets(s.Rules.InitialTicketOffer)
		if len(tickets) == 0 {
			continue
		}
		minKeep := s.Rules.InitialTicketMinKeep
		if minKeep > len(tickets) {
			minKeep = len(tickets)
		}
		s.Offers[p.ID] = &TicketOffer{
			PlayerID: p.ID,
			Context:  TicketInitial,
			Tickets:  tickets,
			MinKeep:  minKeep,
		}
	}
}

// offerMidgameTickets starts the pick-tickets turn action: a fresh set
// is drawn from the pool and held pending until confirmTickets.
func (s *Session) offerMidgameTickets(playerID string) (*TicketOffer, error) {
	p, re := s.requireCurrent(playerID)
	if re != nil {
		return nil, re
	}
	if re := s.Turn.legal(ActionPickTickets); re != nil {
		return nil, re
	}
	if offer, pending := s.Offers[p.ID]; pending {
		// Re-requesting the same offer is a read, not a redraw.
		return offer, nil
	}

	tickets := s.Deck.DrawTickets(s.Rules.MidgameTicketOffer)
	if len(tickets) == 0 {
		return nil, reject(ReasonTicketsExhausted, "ticket pool is empty")
	}
	minKeep := s.Rules.MidgameTicketMinKeep
	if minKeep > len(tickets) {
		minKeep = len(tickets)
	}
	offer := &TicketOffer{
		PlayerID: p.ID,
		Context:  TicketMidgame,
		Tickets:  tickets,
		MinKeep:  minKeep,
	}
	s.Turn.begin(ActionPickTickets)
	s.Offers[p.ID] = offer
	return offer, nil
}

// previewTickets returns the pending offer without mutating anything.
func (s *Session) previewTickets(playerID string) ([]Ticket, error) {
	_, _, re := s.seatOf(playerID)
	if re != nil {
		return nil, re
	}
	offer, pending := s.Offers[playerID]
	if !pending {
		return nil, reject(ReasonNoTicketOffer, "no pending ticket offer for %s", playerID)
	}
	out := make([]Ticket, len(offer.Tickets))
	copy(out, offer.Tickets)
	return out, nil
}

// confirmTickets applies the player's selection against the pending
// offer. The kept count must lie inside the offer's [min, max]; kept
// tickets join the player's held set, the rest go back to the pool.
func (s *Session) confirmTickets(playerID string, keptIDs []string, ctx TicketContext) (*TicketResult, error) {
	_, p, re := s.seatOf(playerID)
	if re != nil {
		return nil, re
	}
	offer, pending := s.Offers[playerID]
	if !pending {
		return nil, reject(ReasonNoTicketOffer, "no pending ticket offer for %s", playerID)
	}
	if offer.Context != ctx {
		return nil, reject(ReasonNoTicketOffer, "pending offer is %s, not %s", offer.Context, ctx)
	}
	if ctx == TicketMidgame {
		// The purchase is a turn action; only the current player may
		// resolve it, and only while pick-tickets is in progress.
		if _, re := s.requireCurrent(playerID); re != nil {
			return nil, re
		}
		if re := s.Turn.legal(ActionPickTickets); re != nil {
			return nil, re
		}
	}

	kept := make([]Ticket, 0, len(keptIDs))
	seen := make(map[string]bool, len(keptIDs))
	for _, id := range keptIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		t, ok := offer.ticket(id)
		if !ok {
			return nil, reject(ReasonUnknownTicket, "ticket %s not in the offer", id)
		}
		kept = append(kept, t)
	}
	if len(kept) < offer.MinKeep || len(kept) > len(offer.Tickets) {
		return nil, reject(ReasonSelectionBounds,
			"kept %d tickets, allowed %d..%d", len(kept), offer.MinKeep, len(offer.Tickets))
	}

	// Accepted: move kept tickets in, return the rest to the pool.
	var returned []Ticket
	for _, t := range offer.Tickets {
		if seen[t.ID] {
			continue
		}
		returned = append(returned, t)
	}
	p.Tickets = append(p.Tickets, kept...)
	s.Deck.ReturnTickets(returned)
	delete(s.Offers, playerID)

	res := &TicketResult{Kept: kept, Returned: len(returned)}
	if ctx == TicketMidgame {
		s.Turn.complete()
		res.TurnCompleted = true
		res.NextPlayer = s.peekNextPlayerID()
	}
	return res, nil
}
