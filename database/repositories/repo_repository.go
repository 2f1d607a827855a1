package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/monitoring"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repoRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProjectRepository, *gorm.DB]
}

func NewRepoRepository(db *gorm.DB) *repoRepository {
	return &repoRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProjectRepository](db),
	}
}

func (g *repoRepository) FindByProjectAndURL(projectID uuid.UUID, url string) (models.ProjectRepository, error) {
	var repo models.ProjectRepository
	err := g.db.Where("project_id = ? AND url = ?", projectID, url).First(&repo).Error
	return repo, err
}

func (g *repoRepository) GetByProjectAndType(projectID uuid.UUID, repositoryType models.RepositoryType) ([]models.ProjectRepository, error) {
	var repos []models.ProjectRepository
	err := g.db.Where("project_id = ? AND type = ?", projectID, repositoryType).Find(&repos).Error
	return repos, err
}

func (g *repoRepository) Remove(tx *gorm.DB, projectID uuid.UUID, url string) error {
	result := g.GetDB(tx).
		Where("project_id = ? AND url = ?", projectID, url).
		Delete(&models.ProjectRepository{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateByURL patches the mutable fields of the repository identified by the
// (project, url) key and returns the updated row.
func (g *repoRepository) UpdateByURL(tx *gorm.DB, projectID uuid.UUID, url string, updates map[string]any) (models.ProjectRepository, error) {
	result := g.GetDB(tx).Model(&models.ProjectRepository{}).
		Where("project_id = ? AND url = ?", projectID, url).
		Updates(updates)
	if result.Error != nil {
		return models.ProjectRepository{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ProjectRepository{}, gorm.ErrRecordNotFound
	}
	return g.FindByProjectAndURL(projectID, url)
}

// ReplaceForType swaps the full set of repositories of one type for the
// project: delete everything of that type, bulk-insert the replacements, one
// transaction. Repositories of other types are untouched. A failing insert
// (e.g. duplicate URLs in the new set) aborts the delete as well, so readers
// never lose the previous set.
func (g *repoRepository) ReplaceForType(projectID uuid.UUID, repositoryType models.RepositoryType, repos []models.ProjectRepository) ([]models.ProjectRepository, error) {
	for i := range repos {
		repos[i].ProjectID = projectID
		repos[i].Type = repositoryType
	}

	err := g.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ? AND type = ?", projectID, repositoryType).
			Delete(&models.ProjectRepository{}).Error; err != nil {
			return err
		}
		if len(repos) == 0 {
			return nil
		}
		return tx.Create(&repos).Error
	})
	if err != nil {
		monitoring.ReplaceCollectionTotal.WithLabelValues("repositories", "failure").Inc()
		return nil, err
	}

	monitoring.ReplaceCollectionTotal.WithLabelValues("repositories", "success").Inc()
	return repos, nil
}
