package game

// Card draw validation. A turn's card-draw action normally consumes two
// draws, closed (blind, off the pile) or open (a chosen face-up card).
// Two special rules shape the legality:
//
//  1. Taking a face-up locomotive is only ever a single, turn-ending
//     action; it is legal solely as the very first draw of the turn.
//  2. After any draw, locomotives in the display are locked for the
//     rest of the turn. Non-locomotive open cards and closed draws stay
//     legal until the quota is reached.

// DrawResult reports an accepted draw.
type DrawResult struct {
	Card          Card   `json:"card"`
	TurnCompleted bool   `json:"turn_completed"`
	NextPlayer    string `json:"next_player,omitempty"`
}

// drawClosedCard draws the top face-down card for the acting player.
func (s *Session) drawClosedCard(playerID string) (*DrawResult, error) {
	p, re := s.requireCurrent(playerID)
	if re != nil {
		return nil, re
	}
	if re := s.Turn.legal(ActionDrawCards); re != nil {
		return nil, re
	}

	card, ok := s.Deck.DrawClosed()
	if !ok {
		return nil, reject(ReasonDeckEmpty, "no cards left to draw")
	}

	s.Turn.begin(ActionDrawCards)
	p.Hand = append(p.Hand, card)
	s.Turn.CardsDrawn++
	s.Turn.WildcardLocked = true

	// Closed draws never end the turn on their own before the quota,
	// locomotive or not.
	res := &DrawResult{Card: card}
	if s.Turn.CardsDrawn >= s.Rules.DrawQuota {
		s.Turn.complete()
		res.TurnCompleted = true
		res.NextPlayer = s.peekNextPlayerID()
	}
	return res, nil
}

// drawOpenCard takes a specific card from the face-up display.
func (s *Session) drawOpenCard(playerID string, displayIndex int) (*DrawResult, error) {
	p, re := s.requireCurrent(playerID)
	if re != nil {
		return nil, re
	}
	if re := s.Turn.legal(ActionDrawCards); re != nil {
		return nil, re
	}

	card, ok := s.Deck.PeekDisplay(displayIndex)
	if !ok {
		return nil, reject(ReasonCardUnavailable, "display slot %d is empty", displayIndex)
	}
	if card.Wild() && s.Turn.WildcardLocked {
		return nil, reject(ReasonWildcardLocked, "open locomotive not allowed after a draw this turn")
	}

	// All checks passed; from here on the draw fully applies.
	s.Deck.TakeDisplay(displayIndex)
	s.Turn.begin(ActionDrawCards)
	p.Hand = append(p.Hand, card)
	s.Turn.CardsDrawn++
	s.Turn.WildcardLocked = true

	res := &DrawResult{Card: card}
	if card.Wild() || s.Turn.CardsDrawn >= s.Rules.DrawQuota {
		s.Turn.complete()
		res.TurnCompleted = true
		res.NextPlayer = s.peekNextPlayerID()
	}
	return res, nil
}
