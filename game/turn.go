package game

// Phase is the per-turn lifecycle of the acting player.
type Phase uint8

const (
	// PhaseAwaiting: no action chosen yet; all three kinds are legal.
	PhaseAwaiting Phase = iota
	// PhaseInProgress: one action chosen and partially executed; only
	// continuation calls for the same kind are accepted.
	PhaseInProgress
	// PhaseCompleted: terminal for the turn, awaiting hand-off.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaiting:
		return "awaiting"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// ActionKind tags the three turn actions.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionDrawCards
	ActionClaimRoute
	ActionPickTickets
)

func (k ActionKind) String() string {
	switch k {
	case ActionDrawCards:
		return "draw_cards"
	case ActionClaimRoute:
		return "claim_route"
	case ActionPickTickets:
		return "pick_tickets"
	}
	return "none"
}

// TurnState tracks whose turn it is, which phase it is in, and the
// counters needed to resume a partially-completed card-draw action.
// Phase and action kind are plain tagged values dispatched by the
// switches below, so the whole legality matrix lives in this file.
type TurnState struct {
	Seat           int        `json:"seat"`
	Phase          Phase      `json:"phase"`
	Action         ActionKind `json:"action"`
	CardsDrawn     int        `json:"cards_drawn"`
	WildcardLocked bool       `json:"wildcard_locked"`
}

// CanPerform reports whether the given action kind may start or continue
// right now.
func (t *TurnState) CanPerform(kind ActionKind) bool {
	switch t.Phase {
	case PhaseAwaiting:
		return kind == ActionDrawCards || kind == ActionClaimRoute || kind == ActionPickTickets
	case PhaseInProgress:
		return kind == t.Action
	case PhaseCompleted:
		return false
	}
	return false
}

// legal returns the rejection for an illegal entry of the given kind:
// a different in-progress action or a spent turn. Pure; callers check
// this before any mutation so rejections leave the session untouched.
func (t *TurnState) legal(kind ActionKind) *RuleError {
	switch t.Phase {
	case PhaseAwaiting:
		return nil
	case PhaseInProgress:
		if kind == t.Action {
			return nil
		}
		return reject(ReasonActionLocked, "%s already in progress", t.Action)
	case PhaseCompleted:
		return reject(ReasonTurnAlreadyUsed, "turn already completed")
	}
	return reject(ReasonActionLocked, "unknown phase")
}

// begin records the chosen action kind. Callers must have passed legal.
func (t *TurnState) begin(kind ActionKind) {
	if t.Phase == PhaseAwaiting {
		t.Action = kind
		t.Phase = PhaseInProgress
	}
}

// complete marks the turn finished. Called by a validator to signal its
// own natural end.
func (t *TurnState) complete() {
	t.Phase = PhaseCompleted
}

// Completed reports whether the turn has finished.
func (t *TurnState) Completed() bool { return t.Phase == PhaseCompleted }

// reset starts a fresh turn for the given seat.
func (t *TurnState) reset(seat int) {
	t.Seat = seat
	t.Phase = PhaseAwaiting
	t.Action = ActionNone
	t.CardsDrawn = 0
	t.WildcardLocked = false
}
