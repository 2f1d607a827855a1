package repositories

import (
	"time"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

// Read returns the project with every owned collection and the team. It does
// NOT filter soft-deleted projects - historical joins (applications,
// snapshots) must stay addressable by primary key. Listing operations apply
// the visibility filter instead.
func (g *projectRepository) Read(projectID uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.db.Unscoped().
		Preload("Team.User").
		Preload("Repositories").
		Preload("Contracts").
		Preload("Funding").
		Preload("Snapshots").
		Preload("Applications").
		First(&project, "id = ?", projectID).Error
	return project, err
}

// Update writes the project through the soft-delete scope. A deleted project
// is not updatable even though Read still returns it.
func (g *projectRepository) Update(tx *gorm.DB, project *models.Project) error {
	result := g.GetDB(tx).Save(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete stamps deleted_at. Children are kept; re-applying overwrites the
// timestamp.
func (g *projectRepository) SoftDelete(tx *gorm.DB, projectID uuid.UUID) error {
	result := g.GetDB(tx).Model(&models.Project{}).Unscoped().Where("id = ?", projectID).Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetUserProjects lists the non-deleted projects the user is a member of,
// without the nested collections.
func (g *projectRepository) GetUserProjects(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := g.userProjectsQuery(userID).Find(&projects).Error
	return projects, err
}

// GetUserProjectsWithDetails is the detailed variant: full preloads, ordered
// by creation time ascending.
func (g *projectRepository) GetUserProjectsWithDetails(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := g.userProjectsQuery(userID).
		Order("projects.created_at ASC").
		Preload("Team.User").
		Preload("Repositories").
		Preload("Contracts").
		Preload("Funding").
		Preload("Snapshots").
		Preload("Applications").
		Find(&projects).Error
	return projects, err
}

// GetUserApplications returns the user's non-deleted projects with their
// applications preloaded, most recent application first.
func (g *projectRepository) GetUserApplications(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := g.userProjectsQuery(userID).
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applications.created_at DESC")
		}).
		Find(&projects).Error
	return projects, err
}

// userProjectsQuery is the single place the "projects of a user, excluding
// soft-deleted ones" predicate lives. gorm's soft-delete scope on
// models.Project supplies the deleted_at IS NULL part.
func (g *projectRepository) userProjectsQuery(userID uuid.UUID) *gorm.DB {
	return g.db.Model(&models.Project{}).
		Joins("JOIN user_projects ON user_projects.project_id = projects.id").
		Where("user_projects.user_id = ?", userID)
}
