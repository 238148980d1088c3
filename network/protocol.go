package network

// 消息ID定义：1xx 房间管理，2xx 游戏动作，3xx 状态推送
const (
	MsgTypeHeartbeat = 1

	MsgTypeJoinRoom   = 101
	MsgTypeLeaveRoom  = 102
	MsgTypeCreateRoom = 103

	MsgTypePlayerAction = 201
	MsgTypeActionResult = 202

	MsgTypeRoomState   = 301
	MsgTypeGameStart   = 302
	MsgTypeTicketOffer = 303
	MsgTypeTurnChanged = 304
	MsgTypeGameSync    = 305
	MsgTypeFinalRound  = 306
	MsgTypeScoreboard  = 307
	MsgTypeGameEnd     = 308
)
