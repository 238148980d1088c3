// persistence/interface.go
package persistence

import (
	"fmt"

	"github.com/railbound/gameserver/models"
	"gorm.io/gorm"
)

// Database 数据库接口
type Database interface {
	SavePlayerData(playerID string, data interface{}) error
	LoadPlayerData(playerID string, result interface{}) error
	SaveMatchRecord(record *models.MatchRecord) error
	SaveRoomState(roomID, state string, players interface{}) error
	LoadRoomState(roomID string, result interface{}) error
	Transaction(fn func(tx *gorm.DB) error) error
	GetPlayerStats(playerID string) (map[string]interface{}, error)
	Close() error
}

// 错误定义
var (
	ErrRecordNotFound = fmt.Errorf("record not found")
)
