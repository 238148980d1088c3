package state

import (
	"encoding/json"
	"fmt"

	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/logger"
	"github.com/railbound/gameserver/network"
)

// TicketDraftState 初始车票选择阶段：每位玩家从 3 张目的地车票中至少保留 2 张。
// 此阶段不消耗回合，全部确认后进入对局。
type TicketDraftState struct {
	RoomStateBase
}

func NewTicketDraftState(room RoomContext) *TicketDraftState {
	return &TicketDraftState{
		RoomStateBase: RoomStateBase{
			ID:   "ticket_draft",
			Room: room,
		},
	}
}

func (s *TicketDraftState) OnEnter() {
	logger.Log.Infof("Room %s entered ticket draft", s.Room.GetID())
	engine := s.Room.Engine()

	s.broadcastGameStart()
	for id := range s.Room.GetPlayers() {
		tickets, err := engine.PreviewTickets(s.Room.GameID(), id)
		if err != nil {
			logger.Log.Errorf("Room %s: no initial offer for %s: %v", s.Room.GetID(), id, err)
			continue
		}
		data, _ := json.Marshal(map[string]interface{}{
			"context": game.TicketInitial,
			"tickets": tickets,
		})
		s.Room.SendTo(id, network.MsgTypeTicketOffer, data)
	}
}

// broadcastGameStart announces the seating: ids, names and seat colors.
func (s *TicketDraftState) broadcastGameStart() {
	sess, err := s.Room.Engine().Session(s.Room.GameID())
	if err != nil {
		logger.Log.Errorf("Room %s: no match session: %v", s.Room.GetID(), err)
		return
	}
	seats := make([]map[string]interface{}, 0, len(sess.Players))
	for _, p := range sess.Players {
		seats = append(seats, map[string]interface{}{
			"id":     p.ID,
			"name":   p.Name,
			"color":  p.Color,
			"trains": p.Trains,
		})
	}
	data, _ := json.Marshal(map[string]interface{}{
		"game_id": s.Room.GameID(),
		"players": seats,
	})
	s.Room.Broadcast(network.MsgTypeGameStart, data)
}

func (s *TicketDraftState) HandleAction(player Player, actionData []byte) error {
	var action Action
	if err := json.Unmarshal(actionData, &action); err != nil {
		return fmt.Errorf("failed to unmarshal action data: %w", err)
	}
	if action.Type != ActionConfirmTickets {
		return fmt.Errorf("action %q not available during ticket draft", action.Type)
	}

	engine := s.Room.Engine()
	res, err := engine.ConfirmTickets(s.Room.GameID(), player.GetID(), action.TicketIDs, game.TicketInitial)
	payload, _ := json.Marshal(resultPayload(action.Type, res, err))
	s.Room.SendTo(player.GetID(), network.MsgTypeActionResult, payload)
	if err != nil {
		// 拒绝已通过 ActionResult 告知玩家，向上返回仅用于统计
		return err
	}
	player.SetReady(true)

	pending, err := engine.PendingInitialOffers(s.Room.GameID())
	if err != nil {
		return err
	}
	if pending == 0 {
		return s.Room.ChangeState(NewPlayingState(s.Room))
	}
	return nil
}
