// state/interfaces.go
package state

import (
	"time"

	"github.com/railbound/gameserver/game"
)

// Player defines the minimal interface for a seated client that a state
// needs to interact with.
type Player interface {
	GetID() string
	GetName() string
	IsReady() bool
	SetReady(bool)
}

// RoomContext defines the interface a Room must implement to be managed
// by the lifecycle states. Defined here to break the import cycle
// between room and state.
type RoomContext interface {
	GetID() string
	GetPlayers() map[string]Player
	GetMinPlayers() int
	GetMaxPlayers() int
	ChangeState(newState State) error
	Broadcast(msgID uint16, data []byte) error
	SendTo(playerID string, msgID uint16, data []byte) error

	// Engine returns the shared rules engine; GameID the session id of
	// this room's match (equal to the room id once the match started).
	Engine() *game.Engine
	GameID() string
	StartMatch() error
	FinishMatch(scores []game.PlayerScore)

	TurnTimeout() time.Duration
	ScheduleTimer(delay time.Duration, fn func()) int64
	CancelTimer(id int64)
}
