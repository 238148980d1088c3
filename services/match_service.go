// services/match_service.go
package services

import (
	"time"

	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/models"
	"github.com/railbound/gameserver/persistence"
	"gorm.io/gorm"
)

// MatchService 负责对局结果的落库和玩家生涯数据的更新
type MatchService struct {
	db persistence.Database
}

func NewMatchService(db persistence.Database) *MatchService {
	return &MatchService{db: db}
}

// RecordMatch 保存一局的榜单并更新每位玩家的生涯统计。
// 实现 room.MatchSink 接口。
func (s *MatchService) RecordMatch(roomID string, scores []game.PlayerScore, duration time.Duration) error {
	record := buildMatchRecord(roomID, scores, duration)

	if err := s.db.SaveMatchRecord(record); err != nil {
		return err
	}

	// 使用事务更新生涯数据，避免并发结算互相覆盖
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, result := range record.Players {
			var player models.GormPlayer
			err := tx.Where("player_id = ?", result.PlayerID).First(&player).Error
			if err == gorm.ErrRecordNotFound {
				player = models.GormPlayer{
					PlayerID: result.PlayerID,
					Name:     result.Name,
				}
			} else if err != nil {
				return err
			}

			player.Matches++
			if result.Outcome == "win" {
				player.Wins++
			}
			if result.Total > player.BestScore {
				player.BestScore = result.Total
			}
			if err := tx.Save(&player).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPlayerWithStats 获取玩家信息和统计
func (s *MatchService) GetPlayerWithStats(playerID string) (map[string]interface{}, error) {
	var result map[string]interface{}

	// 使用事务确保数据一致性
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 获取玩家基本信息
		var player models.GormPlayer
		if err := tx.Where("player_id = ?", playerID).First(&player).Error; err != nil {
			return err
		}

		// 获取玩家统计信息
		stats, err := s.db.GetPlayerStats(playerID)
		if err != nil {
			return err
		}

		result = map[string]interface{}{
			"player": player,
			"stats":  stats,
		}

		return nil
	})

	return result, err
}

// buildMatchRecord converts the scoreboard into the persistence model.
// Scores arrive sorted by total descending, so the winner is the first
// entry; on a tied total every tied player counts as a winner.
func buildMatchRecord(roomID string, scores []game.PlayerScore, duration time.Duration) *models.MatchRecord {
	record := &models.MatchRecord{
		RoomID:    roomID,
		Duration:  int(duration.Seconds()),
		CreatedAt: time.Now(),
	}
	if len(scores) == 0 {
		return record
	}

	best := scores[0].Total
	record.Winner = scores[0].PlayerID

	for _, score := range scores {
		outcome := "lose"
		if score.Total == best {
			outcome = "win"
			if len(scores) > 1 && scores[1].Total == best {
				outcome = "draw"
			}
		}
		record.Players = append(record.Players, models.PlayerResult{
			PlayerID:         score.PlayerID,
			Name:             score.Name,
			RoutePoints:      score.RoutePoints,
			TicketPoints:     score.TicketPointsPositive - score.TicketPointsNegative,
			LongestPath:      score.LongestPath,
			LongestPathBonus: score.LongestPathBonus,
			Total:            score.Total,
			Outcome:          outcome,
		})
	}
	return record
}
