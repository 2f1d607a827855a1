package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"gorm.io/gorm"
)

type fundingRoundRepository struct {
	db *gorm.DB
	utils.Repository[string, models.FundingRound, *gorm.DB]
}

func NewFundingRoundRepository(db *gorm.DB) *fundingRoundRepository {
	return &fundingRoundRepository{
		db:         db,
		Repository: newGormRepository[string, models.FundingRound](db),
	}
}
