package state

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/logger"
	"github.com/railbound/gameserver/network"
)

// PlayingState 对局进行状态：将玩家动作交给规则引擎校验，并负责回合推进、
// 超时跳过与终局触发。
type PlayingState struct {
	RoomStateBase

	mu             sync.Mutex
	turnTimerID    int64
	turnSeq        uint64 // bumped whenever the armed turn ends
	finalTurnsLeft int    // -1 until the final round is armed
}

func NewPlayingState(room RoomContext) *PlayingState {
	return &PlayingState{
		RoomStateBase: RoomStateBase{
			ID:   "playing",
			Room: room,
		},
		finalTurnsLeft: -1,
	}
}

func (s *PlayingState) OnEnter() {
	logger.Log.Infof("Room %s entered playing state", s.Room.GetID())
	current, err := s.Room.Engine().CurrentPlayer(s.Room.GameID())
	if err != nil {
		logger.Log.Errorf("Room %s: no current player: %v", s.Room.GetID(), err)
		return
	}
	s.broadcastTurn(current)
	s.mu.Lock()
	s.armTurnTimer()
	s.mu.Unlock()
}

func (s *PlayingState) OnExit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.turnTimerID != 0 {
		s.Room.CancelTimer(s.turnTimerID)
		s.turnTimerID = 0
	}
	s.turnSeq++
}

// HandleAction dispatches one player action to the matching engine
// operation. Rejections are reported back to the player; accepted
// actions are broadcast and may complete the turn.
func (s *PlayingState) HandleAction(player Player, actionData []byte) error {
	var action Action
	if err := json.Unmarshal(actionData, &action); err != nil {
		return fmt.Errorf("failed to unmarshal action data: %w", err)
	}

	engine := s.Room.Engine()
	gid := s.Room.GameID()
	pid := player.GetID()

	var (
		result        interface{}
		err           error
		turnCompleted bool
	)

	switch action.Type {
	case ActionDrawClosed:
		var res *game.DrawResult
		res, err = engine.DrawClosedCard(gid, pid)
		if err == nil {
			result, turnCompleted = res, res.TurnCompleted
		}

	case ActionDrawOpen:
		var res *game.DrawResult
		res, err = engine.DrawOpenCard(gid, pid, action.DisplayIndex)
		if err == nil {
			result, turnCompleted = res, res.TurnCompleted
		}

	case ActionClaimRoute:
		var cards []game.Card
		cards, err = parseCards(action.Cards)
		if err == nil {
			var res *game.ClaimResult
			res, err = engine.ClaimRoute(gid, pid, action.RouteID, cards)
			if err == nil {
				result, turnCompleted = res, res.TurnCompleted
				if res.FinalRoundArmed {
					s.armFinalRound()
				}
			}
		}

	case ActionOfferTickets:
		result, err = engine.OfferMidgameTickets(gid, pid)

	case ActionConfirmTickets:
		var res *game.TicketResult
		res, err = engine.ConfirmTickets(gid, pid, action.TicketIDs, game.TicketMidgame)
		if err == nil {
			result, turnCompleted = res, res.TurnCompleted
		}

	default:
		err = fmt.Errorf("unknown action type %q", action.Type)
	}

	payload, _ := json.Marshal(resultPayload(action.Type, result, err))
	s.Room.SendTo(pid, network.MsgTypeActionResult, payload)
	if err != nil {
		// 拒绝已通过 ActionResult 告知玩家，向上返回仅用于统计
		return err
	}

	s.broadcastSync()
	if turnCompleted {
		s.advanceTurn()
	}
	return nil
}

// armFinalRound starts the last-full-round countdown: once a claim
// drops a player to the train threshold, every seat gets one more turn.
func (s *PlayingState) armFinalRound() {
	s.mu.Lock()
	if s.finalTurnsLeft >= 0 {
		s.mu.Unlock()
		return
	}
	// The arming claim still ends its own turn and is counted down by
	// advanceTurn, so the extra one keeps a full round for every seat,
	// the triggering player included.
	s.finalTurnsLeft = len(s.Room.GetPlayers()) + 1
	s.mu.Unlock()
	s.Room.Broadcast(network.MsgTypeFinalRound, []byte(`{"final_round":true}`))
}

// advanceTurn hands the turn to the next seat, or settles the match
// when the final round has run out.
func (s *PlayingState) advanceTurn() {
	s.mu.Lock()
	if s.turnTimerID != 0 {
		s.Room.CancelTimer(s.turnTimerID)
		s.turnTimerID = 0
	}
	// A timeout for the ended turn may already be in flight past
	// CancelTimer; bumping the sequence makes it a no-op.
	s.turnSeq++
	if s.finalTurnsLeft > 0 {
		s.finalTurnsLeft--
	}
	settle := s.finalTurnsLeft == 0
	s.mu.Unlock()

	if settle {
		if err := s.Room.ChangeState(NewSettlementState(s.Room)); err != nil {
			logger.Log.Errorf("Room %s failed to settle: %v", s.Room.GetID(), err)
		}
		return
	}

	next, err := s.Room.Engine().BeginNextTurn(s.Room.GameID())
	if err != nil {
		logger.Log.Errorf("Room %s failed to advance turn: %v", s.Room.GetID(), err)
		return
	}
	s.broadcastTurn(next)
	s.mu.Lock()
	s.armTurnTimer()
	s.mu.Unlock()
}

// armTurnTimer schedules the stalled-player skip. Callers hold s.mu.
// The captured sequence ties the callback to this turn only.
func (s *PlayingState) armTurnTimer() {
	timeout := s.Room.TurnTimeout()
	if timeout <= 0 {
		return
	}
	s.turnSeq++
	seq := s.turnSeq
	s.turnTimerID = s.Room.ScheduleTimer(timeout, func() { s.onTurnTimeout(seq) })
}

// onTurnTimeout force-completes a stalled turn and moves on. A timeout
// can fire after the turn it was armed for has already ended; the
// sequence check drops those instead of skipping the next player.
func (s *PlayingState) onTurnTimeout(seq uint64) {
	s.mu.Lock()
	stale := seq != s.turnSeq
	s.mu.Unlock()
	if stale {
		return
	}

	gid := s.Room.GameID()
	done, err := s.Room.Engine().TurnCompleted(gid)
	if err != nil || done {
		return
	}
	logger.Log.Warnf("Room %s: turn timed out, skipping", s.Room.GetID())
	if err := s.Room.Engine().ForceCompleteTurn(gid); err != nil {
		logger.Log.Errorf("Room %s failed to skip turn: %v", s.Room.GetID(), err)
		return
	}
	s.advanceTurn()
}

func (s *PlayingState) broadcastTurn(playerID string) {
	data, _ := json.Marshal(map[string]string{"current_player": playerID})
	s.Room.Broadcast(network.MsgTypeTurnChanged, data)
}

// broadcastSync pushes the public game view: claimed routes, face-up
// display, per-player train/point/hand-size counts. Hands stay private.
func (s *PlayingState) broadcastSync() {
	sess, err := s.Room.Engine().Session(s.Room.GameID())
	if err != nil {
		return
	}
	view := map[string]interface{}{
		"claimed": sess.Claimed,
		"display": sess.Deck.Display(),
	}
	players := make([]map[string]interface{}, 0, len(sess.Players))
	for _, p := range sess.Players {
		players = append(players, map[string]interface{}{
			"id":           p.ID,
			"name":         p.Name,
			"color":        p.Color,
			"trains":       p.Trains,
			"route_points": p.RoutePoints,
			"hand_size":    len(p.Hand),
			"tickets":      len(p.Tickets),
		})
	}
	view["players"] = players
	data, err := json.Marshal(view)
	if err != nil {
		logger.Log.Errorf("Error marshalling sync message: %v", err)
		return
	}
	s.Room.Broadcast(network.MsgTypeGameSync, data)
}
