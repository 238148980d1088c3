package state

import (
	"encoding/json"

	"github.com/railbound/gameserver/logger"
	"github.com/railbound/gameserver/network"
)

// SettlementState 结算状态：计算最终得分，广播榜单并落库
type SettlementState struct {
	RoomStateBase
}

func NewSettlementState(room RoomContext) *SettlementState {
	return &SettlementState{
		RoomStateBase: RoomStateBase{
			ID:   "settlement",
			Room: room,
		},
	}
}

func (s *SettlementState) OnEnter() {
	logger.Log.Infof("Room %s entered settlement", s.Room.GetID())
	engine := s.Room.Engine()
	gid := s.Room.GameID()

	if err := engine.MarkFinished(gid); err != nil {
		logger.Log.Errorf("Room %s failed to mark finished: %v", gid, err)
	}
	scores, err := engine.ComputeFinalScore(gid)
	if err != nil {
		logger.Log.Errorf("Room %s failed to score: %v", gid, err)
		return
	}

	data, _ := json.Marshal(scores)
	s.Room.Broadcast(network.MsgTypeScoreboard, data)
	s.Room.Broadcast(network.MsgTypeGameEnd, data)

	s.Room.FinishMatch(scores)
}

func (s *SettlementState) HandleAction(player Player, actionData []byte) error {
	// 结算后不再接受任何动作
	return nil
}
