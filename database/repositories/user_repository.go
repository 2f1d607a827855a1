package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.User, *gorm.DB]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (g *userRepository) FindByFarcasterID(farcasterID string) (models.User, error) {
	var user models.User
	err := g.db.Where("farcaster_id = ?", farcasterID).First(&user).Error
	return user, err
}
