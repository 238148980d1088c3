// persistence/gorm_postgresql.go
package persistence

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/railbound/gameserver/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormPostgreSQL 使用GORM的PostgreSQL实现
type GormPostgreSQL struct {
	db *gorm.DB
}

// NewGormPostgreSQL 创建GORM PostgreSQL数据库连接
func NewGormPostgreSQL(host string, port int, user, password, dbname string) (*GormPostgreSQL, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// 配置GORM日志
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold: time.Second,   // 慢SQL阈值
			LogLevel:      logger.Silent, // 日志级别
			Colorful:      false,         // 禁用彩色打印
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	// 获取通用数据库对象 sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移表结构
	if err := autoMigrate(db); err != nil {
		return nil, err
	}

	return &GormPostgreSQL{db: db}, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GormPlayer{},
		&models.GormMatchRecord{},
		&models.GormRoom{},
	)
}

// SavePlayerData 保存玩家数据
func (p *GormPostgreSQL) SavePlayerData(playerID string, data interface{}) error {
	playerData, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid player data type")
	}

	// 使用UPSERT操作
	var player models.GormPlayer
	result := p.db.Where("player_id = ?", playerID).First(&player)

	if result.Error == gorm.ErrRecordNotFound {
		// 创建新记录
		player = models.GormPlayer{
			PlayerID: playerID,
			Name:     playerID,
			Stats:    playerData,
		}
		return p.db.Create(&player).Error
	} else if result.Error != nil {
		return result.Error
	}

	// 更新现有记录
	player.Stats = playerData
	return p.db.Save(&player).Error
}

// LoadPlayerData 加载玩家数据
func (p *GormPostgreSQL) LoadPlayerData(playerID string, result interface{}) error {
	var player models.GormPlayer
	if err := p.db.Where("player_id = ?", playerID).First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrRecordNotFound
		}
		return err
	}

	// 将数据转换为目标类型
	data, ok := result.(*map[string]interface{})
	if ok {
		*data = player.Stats
		return nil
	}

	return fmt.Errorf("invalid result type")
}

// SaveMatchRecord 保存对局记录
func (p *GormPostgreSQL) SaveMatchRecord(record *models.MatchRecord) error {
	scoreboard := make(map[string]interface{}, len(record.Players))
	for _, pr := range record.Players {
		scoreboard[pr.PlayerID] = map[string]interface{}{
			"name":               pr.Name,
			"route_points":       pr.RoutePoints,
			"ticket_points":      pr.TicketPoints,
			"longest_path":       pr.LongestPath,
			"longest_path_bonus": pr.LongestPathBonus,
			"total":              pr.Total,
			"outcome":            pr.Outcome,
		}
	}

	matchRecord := models.GormMatchRecord{
		RoomID:     record.RoomID,
		Winner:     record.Winner,
		Scoreboard: scoreboard,
		Duration:   record.Duration,
	}

	return p.db.Create(&matchRecord).Error
}

// SaveRoomState 保存房间状态
func (p *GormPostgreSQL) SaveRoomState(roomID, state string, players interface{}) error {
	playersData, ok := players.(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid players data type")
	}

	var room models.GormRoom
	result := p.db.Where("room_id = ?", roomID).First(&room)

	if result.Error == gorm.ErrRecordNotFound {
		// 创建新记录
		room = models.GormRoom{
			RoomID:  roomID,
			State:   state,
			Players: playersData,
		}
		return p.db.Create(&room).Error
	} else if result.Error != nil {
		return result.Error
	}

	// 更新现有记录
	room.State = state
	room.Players = playersData
	return p.db.Save(&room).Error
}

// LoadRoomState 加载房间状态
func (p *GormPostgreSQL) LoadRoomState(roomID string, result interface{}) error {
	var room models.GormRoom
	if err := p.db.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrRecordNotFound
		}
		return err
	}

	// 将数据转换为目标类型
	data, ok := result.(*map[string]interface{})
	if ok {
		*data = room.Players
		return nil
	}

	return fmt.Errorf("invalid result type")
}

// Close 关闭数据库连接
func (p *GormPostgreSQL) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// 添加事务支持
func (p *GormPostgreSQL) Transaction(fn func(tx *gorm.DB) error) error {
	return p.db.Transaction(fn)
}

// GetPlayerStats 汇总玩家的历史对局统计
func (p *GormPostgreSQL) GetPlayerStats(playerID string) (map[string]interface{}, error) {
	var stats map[string]interface{}

	err := p.db.Raw(
		`
        SELECT
            COUNT(*) as total_games,
            SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END) as wins,
            SUM(CASE WHEN winner <> ? THEN 1 ELSE 0 END) as losses,
            MAX((scoreboard->?->>'total')::int) as best_score,
            MAX((scoreboard->?->>'longest_path')::int) as longest_path
        FROM gorm_match_records
        WHERE jsonb_exists(scoreboard, ?)`,
		playerID, playerID, playerID, playerID, playerID,
	).Scan(&stats).Error

	return stats, err
}
