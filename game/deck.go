package game

import (
	"math/rand"
)

// Deck owns every card that is not in a player's hand: the face-down
// pile, the face-up display and the discard pile, plus the destination
// ticket pool. Conservation invariant: pile + display + hands + discard
// is constant for the life of a session.
type Deck struct {
	rng     *rand.Rand
	pile    []Card
	display []Card
	discard []Card

	tickets []Ticket

	displaySize int
	flushLimit  int
}

// NewDeck builds and shuffles a full card deck and ticket pool.
func NewDeck(rules Rules, tickets []Ticket, seed int64) *Deck {
	d := &Deck{
		rng:         rand.New(rand.NewSource(seed)),
		displaySize: rules.DisplaySize,
		flushLimit:  rules.LocomotiveFlushLimit,
	}
	for _, color := range TrainColors {
		for i := 0; i < rules.CardsPerColor; i++ {
			d.pile = append(d.pile, Card{Color: color})
		}
	}
	for i := 0; i < rules.LocomotiveCount; i++ {
		d.pile = append(d.pile, Card{Color: ColorLocomotive})
	}
	d.shufflePile()

	d.tickets = make([]Ticket, len(tickets))
	copy(d.tickets, tickets)
	d.rng.Shuffle(len(d.tickets), func(i, j int) {
		d.tickets[i], d.tickets[j] = d.tickets[j], d.tickets[i]
	})

	d.display = make([]Card, d.displaySize)
	d.refillDisplay()
	return d
}

func (d *Deck) shufflePile() {
	d.rng.Shuffle(len(d.pile), func(i, j int) {
		d.pile[i], d.pile[j] = d.pile[j], d.pile[i]
	})
}

// reshuffle folds the discard pile back into the face-down pile. Only
// called when the pile is empty.
func (d *Deck) reshuffle() {
	if len(d.discard) == 0 {
		return
	}
	d.pile = append(d.pile, d.discard...)
	d.discard = d.discard[:0]
	d.shufflePile()
}

// DrawClosed takes the top face-down card. Returns false when both the
// pile and the discard are exhausted.
func (d *Deck) DrawClosed() (Card, bool) {
	if len(d.pile) == 0 {
		d.reshuffle()
	}
	if len(d.pile) == 0 {
		return NoCard, false
	}
	card := d.pile[len(d.pile)-1]
	d.pile = d.pile[:len(d.pile)-1]
	return card, true
}

// PeekDisplay returns the card at a face-up slot without taking it.
func (d *Deck) PeekDisplay(idx int) (Card, bool) {
	if idx < 0 || idx >= len(d.display) || d.display[idx].Empty() {
		return NoCard, false
	}
	return d.display[idx], true
}

// TakeDisplay removes the card at a face-up slot and refills the slot
// from the pile. The slot stays empty when no cards remain to refill it.
func (d *Deck) TakeDisplay(idx int) (Card, bool) {
	card, ok := d.PeekDisplay(idx)
	if !ok {
		return NoCard, false
	}
	d.display[idx] = NoCard
	if refill, ok := d.DrawClosed(); ok {
		d.display[idx] = refill
	}
	d.flushIfLocomotiveHeavy()
	return card, true
}

// Discard returns spent cards to the discard pile.
func (d *Deck) Discard(cards ...Card) {
	d.discard = append(d.discard, cards...)
}

// refillDisplay fills every empty display slot from the pile.
func (d *Deck) refillDisplay() {
	for i := range d.display {
		if !d.display[i].Empty() {
			continue
		}
		card, ok := d.DrawClosed()
		if !ok {
			break
		}
		d.display[i] = card
	}
	d.flushIfLocomotiveHeavy()
}

// flushIfLocomotiveHeavy redeals the display when too many locomotives
// are showing. Gives up once the pool cannot produce a calmer display.
func (d *Deck) flushIfLocomotiveHeavy() {
	if d.flushLimit <= 0 {
		return
	}
	for attempts := 0; attempts < 10; attempts++ {
		locos := 0
		filled := 0
		for _, c := range d.display {
			if c.Empty() {
				continue
			}
			filled++
			if c.Wild() {
				locos++
			}
		}
		if locos < d.flushLimit || filled < len(d.display) {
			return
		}
		for i, c := range d.display {
			if !c.Empty() {
				d.discard = append(d.discard, c)
				d.display[i] = NoCard
			}
		}
		for i := range d.display {
			card, ok := d.DrawClosed()
			if !ok {
				break
			}
			d.display[i] = card
		}
	}
}

// Display returns a copy of the face-up slots (empty slots included).
func (d *Deck) Display() []Card {
	out := make([]Card, len(d.display))
	copy(out, d.display)
	return out
}

// DrawTickets takes up to n tickets off the ticket pool.
func (d *Deck) DrawTickets(n int) []Ticket {
	if n > len(d.tickets) {
		n = len(d.tickets)
	}
	drawn := make([]Ticket, n)
	copy(drawn, d.tickets[:n])
	d.tickets = d.tickets[n:]
	return drawn
}

// ReturnTickets puts declined tickets back at the bottom of the pool.
func (d *Deck) ReturnTickets(tickets []Ticket) {
	d.tickets = append(d.tickets, tickets...)
}

// Counts returns pile, display, and discard sizes. Used by the card
// conservation checks and the monitor.
func (d *Deck) Counts() (pile, display, discard int) {
	for _, c := range d.display {
		if !c.Empty() {
			display++
		}
	}
	return len(d.pile), display, len(d.discard)
}

// TicketsRemaining returns the size of the ticket pool.
func (d *Deck) TicketsRemaining() int { return len(d.tickets) }
