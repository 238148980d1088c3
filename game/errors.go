package game

import (
	"errors"
	"fmt"
)

// Reason is a stable rejection code surfaced to clients. Every rejection
// is a normal, expected outcome: the session is left untouched and the
// caller decides whether to retry.
type Reason string

const (
	ReasonOutOfTurn        Reason = "OUT_OF_TURN"
	ReasonActionLocked     Reason = "ACTION_LOCKED"
	ReasonTurnAlreadyUsed  Reason = "TURN_ALREADY_USED"
	ReasonWildcardLocked   Reason = "WILDCARD_LOCKED"
	ReasonDeckEmpty        Reason = "DECK_EMPTY"
	ReasonCardUnavailable  Reason = "CARD_UNAVAILABLE"
	ReasonRouteNotFound    Reason = "ROUTE_NOT_FOUND"
	ReasonAlreadyClaimed   Reason = "ALREADY_CLAIMED"
	ReasonCardCount        Reason = "CARD_COUNT_MISMATCH"
	ReasonColorMismatch    Reason = "COLOR_MISMATCH"
	ReasonNotEnoughTrains  Reason = "NOT_ENOUGH_TRAINS"
	ReasonCardsNotInHand   Reason = "CARDS_NOT_IN_HAND"
	ReasonNoTicketOffer    Reason = "NO_TICKET_OFFER"
	ReasonTicketsExhausted Reason = "TICKETS_EXHAUSTED"
	ReasonSelectionBounds  Reason = "SELECTION_OUT_OF_BOUNDS"
	ReasonUnknownTicket    Reason = "UNKNOWN_TICKET"
	ReasonGameNotFinished  Reason = "GAME_NOT_FINISHED"
	ReasonPlayerNotInGame  Reason = "PLAYER_NOT_IN_GAME"
)

// RuleError is a game-law rejection. It carries the reason code across
// the wire and a human-readable detail for logs.
type RuleError struct {
	Reason Reason
	Detail string
}

func (e *RuleError) Error() string {
	if e.Detail == "" {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func reject(reason Reason, format string, args ...interface{}) *RuleError {
	return &RuleError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// RejectionReason extracts the reason code from an error, or empty if the
// error is not a rule rejection.
func RejectionReason(err error) Reason {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason
	}
	return ""
}

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrSessionExists   = errors.New("game session already exists")
)
