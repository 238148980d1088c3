package game

// PlayerColor is the seat color palette. Unique per session.
type PlayerColor string

const (
	SeatRed    PlayerColor = "red"
	SeatBlue   PlayerColor = "blue"
	SeatGreen  PlayerColor = "green"
	SeatYellow PlayerColor = "yellow"
	SeatBlack  PlayerColor = "black"
)

// SeatColors lists the palette in seat-assignment order.
var SeatColors = []PlayerColor{SeatRed, SeatBlue, SeatGreen, SeatYellow, SeatBlack}

// Player is one seat in a session. Hand and tickets are mutated only by
// the validators acting on behalf of this player.
type Player struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Color       PlayerColor `json:"color"`
	Trains      int         `json:"trains"`
	RoutePoints int         `json:"route_points"`
	Hand        []Card      `json:"hand"`
	Tickets     []Ticket    `json:"tickets"`
}

// handHas reports whether the hand contains the given multiset of cards.
func (p *Player) handHas(cards []Card) bool {
	counts := make(map[Color]int, len(p.Hand))
	for _, c := range p.Hand {
		counts[c.Color]++
	}
	for _, c := range cards {
		counts[c.Color]--
		if counts[c.Color] < 0 {
			return false
		}
	}
	return true
}

// removeFromHand removes the given multiset of cards from the hand.
// Callers must have checked handHas first.
func (p *Player) removeFromHand(cards []Card) {
	for _, c := range cards {
		for i := range p.Hand {
			if p.Hand[i].Color == c.Color {
				p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
				break
			}
		}
	}
}

// HandCounts returns the hand grouped by color. Wire-friendly summary
// for state sync.
func (p *Player) HandCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range p.Hand {
		counts[c.Color.String()]++
	}
	return counts
}
