package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Application, *gorm.DB]
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Application](db),
	}
}

func (g *applicationRepository) GetByProjectID(projectID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := g.db.Preload("Round").Where("project_id = ?", projectID).Order("created_at DESC").Find(&applications).Error
	return applications, err
}
