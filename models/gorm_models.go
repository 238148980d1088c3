// models/gorm_models.go
package models

import (
	"gorm.io/gorm"
)

// GormPlayer 玩家生涯模型
type GormPlayer struct {
	gorm.Model
	PlayerID  string                 `gorm:"uniqueIndex;not null"`
	Name      string                 `gorm:"not null"`
	Matches   int                    `gorm:"default:0"`
	Wins      int                    `gorm:"default:0"`
	BestScore int                    `gorm:"default:0"`
	Stats     map[string]interface{} `gorm:"type:jsonb"`
}

// GormMatchRecord 对局记录模型
type GormMatchRecord struct {
	gorm.Model
	RoomID     string                 `gorm:"index;not null"`
	Winner     string                 `gorm:"index"`
	Scoreboard map[string]interface{} `gorm:"type:jsonb;not null"`
	Duration   int                    `gorm:"default:0"` // 对局时长(秒)
}

// GormRoom 房间模型
type GormRoom struct {
	gorm.Model
	RoomID  string                 `gorm:"uniqueIndex;not null"`
	State   string                 `gorm:"not null"`
	Players map[string]interface{} `gorm:"type:jsonb"`
}

// PlayerStats 玩家统计信息
type PlayerStats struct {
	TotalGames  int `json:"total_games"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	BestScore   int `json:"best_score"`
	LongestPath int `json:"longest_path"` // 历史最长连续线路
}
