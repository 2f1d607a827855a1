package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/monitoring"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fundingRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProjectFunding, *gorm.DB]
}

func NewFundingRepository(db *gorm.DB) *fundingRepository {
	return &fundingRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProjectFunding](db),
	}
}

func (g *fundingRepository) GetByProjectID(projectID uuid.UUID) ([]models.ProjectFunding, error) {
	var rows []models.ProjectFunding
	err := g.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

// ReplaceForProject swaps the project's entire funding history and marks the
// project as having added funding - all in one transaction. An empty new set
// is legal: the history is cleared but the flag is still raised, recording
// that the user completed the funding step.
func (g *fundingRepository) ReplaceForProject(projectID uuid.UUID, rows []models.ProjectFunding) ([]models.ProjectFunding, error) {
	for i := range rows {
		rows[i].ProjectID = projectID
	}

	err := g.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).
			Delete(&models.ProjectFunding{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		result := tx.Model(&models.Project{}).Where("id = ?", projectID).Update("added_funding", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		monitoring.ReplaceCollectionTotal.WithLabelValues("funding", "failure").Inc()
		return nil, err
	}

	monitoring.ReplaceCollectionTotal.WithLabelValues("funding", "success").Inc()
	return rows, nil
}
