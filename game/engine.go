package game

// Engine is the rules engine entry point. Every operation looks the
// session up in the injected store, takes the session lock, checks turn
// legality, delegates to the matching validator and reports the result.
// Rejections are side-effect-free; the session is left exactly as it
// was before the call.
type Engine struct {
	store Store
	paths PathScorer
	rules Rules
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithPathScorer swaps the longest-path/connectivity implementation.
func WithPathScorer(p PathScorer) Option {
	return func(e *Engine) { e.paths = p }
}

// WithRules overrides the default rule set for new sessions.
func WithRules(r Rules) Option {
	return func(e *Engine) { e.rules = r }
}

// NewEngine builds an engine over the given session store.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		paths: NewPathScorer(),
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the rule set used for new sessions.
func (e *Engine) Rules() Rules { return e.rules }

// CreateSession seats the players on the given board, registers the
// session, and deals the initial ticket offers.
func (e *Engine) CreateSession(id string, board *Board, seats []Seat, seed int64) (*Session, error) {
	s, err := NewSession(id, board, e.rules, seats, seed)
	if err != nil {
		return nil, err
	}
	s.offerInitialTickets()
	if err := e.store.Put(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Session returns a live session by id.
func (e *Engine) Session(id string) (*Session, error) {
	return e.store.Get(id)
}

// CloseSession drops a finished session from the store.
func (e *Engine) CloseSession(id string) {
	e.store.Delete(id)
}

// ActiveSessions returns the number of live sessions.
func (e *Engine) ActiveSessions() int { return e.store.Count() }

// DrawClosedCard draws blind from the face-down deck.
func (e *Engine) DrawClosedCard(sessionID, playerID string) (*DrawResult, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawClosedCard(playerID)
}

// DrawOpenCard takes a specific card from the face-up display.
func (e *Engine) DrawOpenCard(sessionID, playerID string, displayIndex int) (*DrawResult, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawOpenCard(playerID, displayIndex)
}

// ClaimRoute claims a route with the submitted cards.
func (e *Engine) ClaimRoute(sessionID, playerID, routeID string, cards []Card) (*ClaimResult, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claimRoute(playerID, routeID, cards)
}

// OfferMidgameTickets starts the pick-tickets action for the current
// player and returns the offered set.
func (e *Engine) OfferMidgameTickets(sessionID, playerID string) (*TicketOffer, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offerMidgameTickets(playerID)
}

// PreviewTickets returns the player's pending offer. Read-only.
func (e *Engine) PreviewTickets(sessionID, playerID string) ([]Ticket, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewTickets(playerID)
}

// ConfirmTickets resolves a pending ticket offer.
func (e *Engine) ConfirmTickets(sessionID, playerID string, keptIDs []string, ctx TicketContext) (*TicketResult, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmTickets(playerID, keptIDs, ctx)
}

// ComputeFinalScore builds the final scoreboard, sorted by total
// descending with ties preserved. Idempotent.
func (e *Engine) ComputeFinalScore(sessionID string) ([]PlayerScore, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeFinalScore(e.paths), nil
}

// CurrentPlayer returns the id of the player whose turn it is.
func (e *Engine) CurrentPlayer(sessionID string) (string, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.CurrentPlayerID(), nil
}

// TurnCompleted reports whether the current turn has finished.
func (e *Engine) TurnCompleted(sessionID string) (bool, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Turn.Completed(), nil
}

// BeginNextTurn hands the turn to the next seat and returns the new
// current player. Called by the turn-advancement layer after a turn
// completes (or times out).
func (e *Engine) BeginNextTurn(sessionID string) (string, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginNextTurn(), nil
}

// ForceCompleteTurn ends the current turn regardless of progress. Used
// for stalled-player timeouts; any in-flight draw keeps what it drew.
func (e *Engine) ForceCompleteTurn(sessionID string) error {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Turn.complete()
	return nil
}

// PendingInitialOffers reports how many players still owe their initial
// ticket selection.
func (e *Engine) PendingInitialOffers(sessionID string) (int, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, offer := range s.Offers {
		if offer.Context == TicketInitial {
			n++
		}
	}
	return n, nil
}

// MarkFinished flags the session as finished. Scoring stays callable.
func (e *Engine) MarkFinished(sessionID string) error {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Finished = true
	return nil
}
