package room

import (
	"time"

	"github.com/railbound/gameserver/game"
)

// Broadcaster defines the interface for broadcasting messages to a room.
// This is defined here to break the import cycle between room and broadcast.
type Broadcaster interface {
	BroadcastToRoom(roomID string, msgID uint16, data []byte) error
}

// MatchSink receives the final scoreboard of a settled match for
// persistence. Defined here to break the cycle between room and services.
type MatchSink interface {
	RecordMatch(roomID string, scores []game.PlayerScore, duration time.Duration) error
}
