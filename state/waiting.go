package state

import (
	"github.com/railbound/gameserver/logger"
)

// WaitingState 等待状态：凑齐玩家后开局
type WaitingState struct {
	RoomStateBase
	timer int
}

// NewWaitingState creates a new waiting state.
func NewWaitingState(room RoomContext) *WaitingState {
	return &WaitingState{
		RoomStateBase: RoomStateBase{
			ID:   "waiting",
			Room: room,
		},
	}
}

func (s *WaitingState) OnEnter() {
	s.timer = 300 // 30 seconds at 10fps
}

func (s *WaitingState) OnUpdate() {
	players := len(s.Room.GetPlayers())

	// 房间已满立即开局
	if players >= s.Room.GetMaxPlayers() {
		s.startMatch()
		return
	}

	// 倒计时结束且人数达到下限也开局
	s.timer--
	if s.timer <= 0 && players >= s.Room.GetMinPlayers() {
		s.startMatch()
	}
}

func (s *WaitingState) startMatch() {
	if err := s.Room.StartMatch(); err != nil {
		logger.Log.Errorf("Room %s failed to start match: %v", s.Room.GetID(), err)
		s.timer = 100 // retry in 10 seconds
		return
	}
	if err := s.Room.ChangeState(NewTicketDraftState(s.Room)); err != nil {
		logger.Log.Errorf("Room %s failed to enter ticket draft: %v", s.Room.GetID(), err)
	}
}
