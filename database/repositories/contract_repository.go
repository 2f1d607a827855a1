package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contractRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProjectContract, *gorm.DB]
}

func NewContractRepository(db *gorm.DB) *contractRepository {
	return &contractRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProjectContract](db),
	}
}

// Remove deletes a contract by its natural key. The address comparison is
// exact - callers normalize casing before they get here.
func (g *contractRepository) Remove(tx *gorm.DB, projectID uuid.UUID, contractAddress string, chainID int) error {
	result := g.GetDB(tx).
		Where("project_id = ? AND contract_address = ? AND chain_id = ?", projectID, contractAddress, chainID).
		Delete(&models.ProjectContract{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *contractRepository) FindByDeployer(projectID uuid.UUID, deployerAddress string) ([]models.ProjectContract, error) {
	var contracts []models.ProjectContract
	err := g.db.Where("project_id = ? AND deployer_address = ?", projectID, deployerAddress).Find(&contracts).Error
	return contracts, err
}
