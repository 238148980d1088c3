package game

// Route claim validation. A claim is always a single, complete action:
// it either fully applies (cards discarded, route owned, trains and
// points updated, turn completed) or fully rejects with no mutation.

// ClaimResult reports an accepted route claim.
type ClaimResult struct {
	RouteID         string `json:"route_id"`
	PointsAwarded   int    `json:"points_awarded"`
	TrainsLeft      int    `json:"trains_left"`
	TurnCompleted   bool   `json:"turn_completed"`
	NextPlayer      string `json:"next_player"`
	FinalRoundArmed bool   `json:"final_round_armed"`
}

// claimRoute validates and applies a route claim for the acting player.
func (s *Session) claimRoute(playerID, routeID string, cards []Card) (*ClaimResult, error) {
	p, re := s.requireCurrent(playerID)
	if re != nil {
		return nil, re
	}
	if re := s.Turn.legal(ActionClaimRoute); re != nil {
		return nil, re
	}

	route, ok := s.Board.Route(routeID)
	if !ok {
		return nil, reject(ReasonRouteNotFound, "no route %q on the board", routeID)
	}
	if owner, claimed := s.Claimed[routeID]; claimed {
		// Terminal, not retryable: routes are owned for the session.
		return nil, reject(ReasonAlreadyClaimed, "route %s owned by %s", routeID, owner)
	}
	if len(cards) != route.Length {
		return nil, reject(ReasonCardCount, "route needs %d cards, got %d", route.Length, len(cards))
	}
	if re := checkClaimColors(route, cards); re != nil {
		return nil, re
	}
	if p.Trains < route.Length {
		return nil, reject(ReasonNotEnoughTrains, "%d trains left, route needs %d", p.Trains, route.Length)
	}
	if !p.handHas(cards) {
		return nil, reject(ReasonCardsNotInHand, "submitted cards not all in hand")
	}

	// Accepted. Apply the full delta and complete the turn.
	s.Turn.begin(ActionClaimRoute)
	p.removeFromHand(cards)
	s.Deck.Discard(cards...)
	s.Claimed[routeID] = p.ID
	p.Trains -= route.Length
	points := PointsForLength(route.Length)
	p.RoutePoints += points
	s.Turn.complete()

	if p.Trains <= s.Rules.FinalRoundThreshold {
		s.FinalRound = true
	}

	return &ClaimResult{
		RouteID:         routeID,
		PointsAwarded:   points,
		TrainsLeft:      p.Trains,
		TurnCompleted:   true,
		NextPlayer:      s.peekNextPlayerID(),
		FinalRoundArmed: s.FinalRound,
	}, nil
}

// checkClaimColors enforces the color matching law:
//   - fixed-color route: every non-wildcard card must match the route
//     color; locomotives substitute freely.
//   - gray route: the non-wildcard cards must all share one single
//     color among themselves. The route does not dictate which.
func checkClaimColors(route *Route, cards []Card) *RuleError {
	base := ColorNone
	for _, c := range cards {
		if c.Wild() {
			continue
		}
		switch {
		case route.Color != ColorAny:
			if c.Color != route.Color {
				return reject(ReasonColorMismatch, "route %s needs %s, got %s", route.ID, route.Color, c.Color)
			}
		case base == ColorNone:
			base = c.Color
		case c.Color != base:
			return reject(ReasonColorMismatch, "mixed colors %s and %s on gray route", base, c.Color)
		}
	}
	return nil
}
