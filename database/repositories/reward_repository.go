package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rewardRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Reward, *gorm.DB]
}

func NewRewardRepository(db *gorm.DB) *rewardRepository {
	return &rewardRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Reward](db),
	}
}

func (g *rewardRepository) GetByProjectIDs(projectIDs []uuid.UUID) ([]models.Reward, error) {
	if len(projectIDs) == 0 {
		return []models.Reward{}, nil
	}
	var rewards []models.Reward
	err := g.db.Where("project_id IN ?", projectIDs).Order("created_at DESC").Find(&rewards).Error
	return rewards, err
}

// TotalsByRound sums reward amounts per round across the given projects.
// Amounts are numeric in the database, so the sum happens there and comes
// back as a string - no float round-tripping.
func (g *rewardRepository) TotalsByRound(projectIDs []uuid.UUID) ([]shared.RoundTotal, error) {
	if len(projectIDs) == 0 {
		return []shared.RoundTotal{}, nil
	}
	var totals []shared.RoundTotal
	err := g.db.Model(&models.Reward{}).
		Select("round_id, SUM(amount)::text AS total").
		Where("project_id IN ?", projectIDs).
		Group("round_id").
		Order("round_id ASC").
		Scan(&totals).Error
	return totals, err
}
