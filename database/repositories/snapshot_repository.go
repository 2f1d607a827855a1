package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type snapshotRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProjectSnapshot, *gorm.DB]
}

func NewSnapshotRepository(db *gorm.DB) *snapshotRepository {
	return &snapshotRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProjectSnapshot](db),
	}
}

func (g *snapshotRepository) GetByProjectID(projectID uuid.UUID) ([]models.ProjectSnapshot, error) {
	var snapshots []models.ProjectSnapshot
	err := g.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&snapshots).Error
	return snapshots, err
}
