package game

// Card is an immutable transport card. Cards move between the deck, the
// face-up display, player hands and the discard pile; they are never
// duplicated or lost.
type Card struct {
	Color Color `json:"color"`
}

// NoCard marks an empty face-up display slot.
var NoCard = Card{}

// Empty reports whether this is the absence of a card.
func (c Card) Empty() bool { return c.Color == ColorNone }

// Wild reports whether the card is a locomotive.
func (c Card) Wild() bool { return c.Color == ColorLocomotive }

func (c Card) String() string { return c.Color.String() }
