package state

import (
	"github.com/railbound/gameserver/game"
)

// Action is the JSON payload of a player action packet.
type Action struct {
	Type         string   `json:"type"`
	DisplayIndex int      `json:"display_index,omitempty"`
	RouteID      string   `json:"route_id,omitempty"`
	Cards        []string `json:"cards,omitempty"`
	TicketIDs    []string `json:"ticket_ids,omitempty"`
}

// 动作类型
const (
	ActionDrawClosed     = "draw_closed"
	ActionDrawOpen       = "draw_open"
	ActionClaimRoute     = "claim_route"
	ActionOfferTickets   = "offer_tickets"
	ActionConfirmTickets = "confirm_tickets"
)

// ActionResult is sent back to the acting player for every attempt.
type ActionResult struct {
	Type   string      `json:"type"`
	OK     bool        `json:"ok"`
	Reason game.Reason `json:"reason,omitempty"`
	Detail string      `json:"detail,omitempty"`
	Result interface{} `json:"result,omitempty"`
}

// parseCards converts wire color names to engine cards.
func parseCards(names []string) ([]game.Card, error) {
	cards := make([]game.Card, len(names))
	for i, name := range names {
		color, err := game.ParseColor(name)
		if err != nil {
			return nil, err
		}
		cards[i] = game.Card{Color: color}
	}
	return cards, nil
}

// resultPayload wraps an engine outcome for the wire: either the result
// body or the rejection reason.
func resultPayload(actionType string, result interface{}, err error) *ActionResult {
	if err == nil {
		return &ActionResult{Type: actionType, OK: true, Result: result}
	}
	reason := game.RejectionReason(err)
	if reason == "" {
		return &ActionResult{Type: actionType, OK: false, Detail: err.Error()}
	}
	return &ActionResult{Type: actionType, OK: false, Reason: reason, Detail: err.Error()}
}
