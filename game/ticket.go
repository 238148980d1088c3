package game

// Ticket is a destination ticket: connect Origin to Destination for
// Points, lose Points if unconnected at game end. Completion is never
// stored; it is recomputed from the claimed-route graph at scoring time.
type Ticket struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Points      int    `json:"points"`
}

// TicketContext says which selection quota applies to a ticket offer.
type TicketContext string

const (
	// TicketInitial is the pre-game deal: keep at least offer-1 of the
	// offered tickets (discard at most one). Does not consume a turn.
	TicketInitial TicketContext = "initial"
	// TicketMidgame is an in-turn purchase: keep at least one. Confirming
	// completes the turn.
	TicketMidgame TicketContext = "midgame"
)

// TicketOffer is a pending set of offered tickets awaiting selection.
type TicketOffer struct {
	PlayerID string        `json:"player_id"`
	Context  TicketContext `json:"context"`
	Tickets  []Ticket      `json:"tickets"`
	MinKeep  int           `json:"min_keep"`
}

func (o *TicketOffer) ticket(id string) (Ticket, bool) {
	for _, t := range o.Tickets {
		if t.ID == id {
			return t, true
		}
	}
	return Ticket{}, false
}
