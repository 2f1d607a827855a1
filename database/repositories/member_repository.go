package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.UserProject, *gorm.DB]
}

func NewMemberRepository(db *gorm.DB) *memberRepository {
	return &memberRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.UserProject](db),
	}
}

// AddMembers inserts one membership row per user. Role falls back to member
// when unspecified. A duplicate (user, project) pair fails the whole batch.
func (g *memberRepository) AddMembers(tx *gorm.DB, projectID uuid.UUID, userIDs []uuid.UUID, role models.TeamRole) error {
	if len(userIDs) == 0 {
		return nil
	}
	if role == "" {
		role = models.TeamRoleMember
	}
	memberships := utils.Map(userIDs, func(userID uuid.UUID) models.UserProject {
		return models.UserProject{
			UserID:    userID,
			ProjectID: projectID,
			Role:      role,
		}
	})
	return g.GetDB(tx).Create(&memberships).Error
}

// UpdateRole reassigns the role of the unique (user, project) membership.
// A missing pair is a not-found, never an insert.
func (g *memberRepository) UpdateRole(tx *gorm.DB, projectID uuid.UUID, userID uuid.UUID, role models.TeamRole) error {
	result := g.GetDB(tx).Model(&models.UserProject{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *memberRepository) Remove(tx *gorm.DB, projectID uuid.UUID, userID uuid.UUID) error {
	result := g.GetDB(tx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.UserProject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *memberRepository) GetByUserAndProject(userID uuid.UUID, projectID uuid.UUID) (models.UserProject, error) {
	var membership models.UserProject
	err := g.db.Where("user_id = ? AND project_id = ?", userID, projectID).First(&membership).Error
	return membership, err
}

func (g *memberRepository) ListByProject(projectID uuid.UUID) ([]models.UserProject, error) {
	var memberships []models.UserProject
	err := g.db.Preload("User").Where("project_id = ?", projectID).Find(&memberships).Error
	return memberships, err
}
