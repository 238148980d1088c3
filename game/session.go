package game

import (
	"fmt"
	"sync"
)

// Seat names one participant when a session is created.
type Seat struct {
	PlayerID string
	Name     string
}

// Session is the mutable state of one running match. It is the sole
// boundary the engine writes through; everything else (board, rules)
// is read-only. A single mutex serializes actions per session: exactly
// one action is applied at a time, there is no partial state.
type Session struct {
	ID      string
	Rules   Rules
	Board   *Board
	Deck    *Deck
	Players []*Player

	// Claimed maps route id to owning player id. Routes are owned for
	// the life of the session; entries are never reassigned or removed.
	Claimed map[string]string

	Turn TurnState

	// Offers holds pending ticket offers keyed by player id.
	Offers map[string]*TicketOffer

	FinalRound bool
	Finished   bool

	mu sync.Mutex
}

// NewSession seats the players, builds the deck, and deals the opening
// hands. Seat colors are assigned in join order and are unique.
func NewSession(id string, board *Board, rules Rules, seats []Seat, seed int64) (*Session, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(seats))
	}
	if len(seats) > len(SeatColors) {
		return nil, fmt.Errorf("at most %d players, got %d", len(SeatColors), len(seats))
	}
	seen := make(map[string]bool, len(seats))
	s := &Session{
		ID:      id,
		Rules:   rules,
		Board:   board,
		Deck:    NewDeck(rules, DefaultTickets(), seed),
		Claimed: make(map[string]string),
		Offers:  make(map[string]*TicketOffer),
	}
	for i, seat := range seats {
		if seen[seat.PlayerID] {
			return nil, fmt.Errorf("duplicate player %q", seat.PlayerID)
		}
		seen[seat.PlayerID] = true
		p := &Player{
			ID:     seat.PlayerID,
			Name:   seat.Name,
			Color:  SeatColors[i],
			Trains: rules.TrainsPerPlayer,
		}
		for j := 0; j < openingHandSize; j++ {
			if card, ok := s.Deck.DrawClosed(); ok {
				p.Hand = append(p.Hand, card)
			}
		}
		s.Players = append(s.Players, p)
	}
	s.Turn.reset(0)
	return s, nil
}

// openingHandSize is the number of cards dealt to each player before
// the first turn.
const openingHandSize = 4

// seatOf returns the seat index and player for a player id.
func (s *Session) seatOf(playerID string) (int, *Player, *RuleError) {
	for i, p := range s.Players {
		if p.ID == playerID {
			return i, p, nil
		}
	}
	return 0, nil, reject(ReasonPlayerNotInGame, "player %s not seated", playerID)
}

// requireCurrent rejects actions submitted by a non-current player.
func (s *Session) requireCurrent(playerID string) (*Player, *RuleError) {
	seat, p, re := s.seatOf(playerID)
	if re != nil {
		return nil, re
	}
	if seat != s.Turn.Seat {
		return nil, reject(ReasonOutOfTurn, "current player is %s", s.Players[s.Turn.Seat].ID)
	}
	return p, nil
}

// CurrentPlayerID returns the id of the player whose turn it is.
func (s *Session) CurrentPlayerID() string {
	return s.Players[s.Turn.Seat].ID
}

// peekNextPlayerID returns the id of the player after the current seat
// without advancing the turn pointer.
func (s *Session) peekNextPlayerID() string {
	return s.Players[(s.Turn.Seat+1)%len(s.Players)].ID
}

// beginNextTurn hands the turn to the next seat.
func (s *Session) beginNextTurn() string {
	next := (s.Turn.Seat + 1) % len(s.Players)
	s.Turn.reset(next)
	return s.Players[next].ID
}

// claimedRoutesOf returns the routes owned by a player.
func (s *Session) claimedRoutesOf(playerID string) []*Route {
	var routes []*Route
	for routeID, owner := range s.Claimed {
		if owner == playerID {
			routes = append(routes, s.Board.Routes[routeID])
		}
	}
	return routes
}

// TotalCards counts every card in the session: deck pile, face-up
// display, discard and all hands. Constant for the life of the session.
func (s *Session) TotalCards() int {
	pile, display, discard := s.Deck.Counts()
	total := pile + display + discard
	for _, p := range s.Players {
		total += len(p.Hand)
	}
	return total
}
