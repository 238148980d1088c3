// models/models.go
package models

import (
	"time"
)

// PlayerData 玩家数据模型
type PlayerData struct {
	PlayerID  string                 `json:"player_id"`
	Name      string                 `json:"name"`
	Matches   int                    `json:"matches"`
	Wins      int                    `json:"wins"`
	BestScore int                    `json:"best_score"`
	Extra     map[string]interface{} `json:"extra"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// MatchRecord 对局记录模型，保存一局结束后的完整榜单
type MatchRecord struct {
	RoomID    string         `json:"room_id"`
	Winner    string         `json:"winner"`
	Players   []PlayerResult `json:"players"`
	Duration  int            `json:"duration"` // 对局时长(秒)
	CreatedAt time.Time      `json:"created_at"`
}

// PlayerResult 单个玩家的结算结果
type PlayerResult struct {
	PlayerID         string `json:"player_id"`
	Name             string `json:"name"`
	RoutePoints      int    `json:"route_points"`
	TicketPoints     int    `json:"ticket_points"`
	LongestPath      int    `json:"longest_path"`
	LongestPathBonus int    `json:"longest_path_bonus"`
	Total            int    `json:"total"`
	Outcome          string `json:"outcome"` // win/lose/draw
}

// RoomState 房间状态模型
type RoomState struct {
	RoomID    string                 `json:"room_id"`
	State     string                 `json:"state"`
	Players   map[string]interface{} `json:"players"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
