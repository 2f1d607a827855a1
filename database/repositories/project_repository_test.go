package repositories_test

import (
	"testing"
	"time"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/database/repositories"
	"github.com/Pranay-Bhilare/op-atlas/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestProjectSoftDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	projectRepository := repositories.NewProjectRepository(testDB)
	project, user := integrationtestutil.CreateProjectWithAdmin(testDB, "soft-delete-project", "alice")

	t.Run("listing should contain the project before deletion", func(t *testing.T) {
		projects, err := projectRepository.GetUserProjects(user.ID)
		assert.Nil(t, err)
		assert.Len(t, projects, 1)
	})

	t.Run("soft deleted projects disappear from listings but stay readable by id", func(t *testing.T) {
		err := projectRepository.SoftDelete(nil, project.ID)
		assert.Nil(t, err)

		projects, err := projectRepository.GetUserProjects(user.ID)
		assert.Nil(t, err)
		assert.Empty(t, projects)

		// historical joins still need the row
		read, err := projectRepository.Read(project.ID)
		assert.Nil(t, err)
		assert.True(t, read.DeletedAt.Valid)
	})

	t.Run("deleting twice just overwrites the timestamp", func(t *testing.T) {
		err := projectRepository.SoftDelete(nil, project.ID)
		assert.Nil(t, err)
	})

	t.Run("deleting an unknown project is a not-found", func(t *testing.T) {
		err := projectRepository.SoftDelete(nil, integrationtestutil.CreateUser(testDB, "nobody").ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("a soft deleted project is not updatable", func(t *testing.T) {
		read, err := projectRepository.Read(project.ID)
		assert.Nil(t, err)

		read.Name = "renamed-after-delete"
		assert.ErrorIs(t, projectRepository.Update(nil, &read), gorm.ErrRecordNotFound)
	})
}

func TestProjectReadPreloadsCollections(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	projectRepository := repositories.NewProjectRepository(testDB)
	project, _ := integrationtestutil.CreateProjectWithAdmin(testDB, "preload-project", "bob")

	repo := models.ProjectRepository{ProjectID: project.ID, URL: "https://github.com/acme/preload", Type: models.RepositoryTypeGithub}
	assert.Nil(t, testDB.Create(&repo).Error)

	read, err := projectRepository.Read(project.ID)
	assert.Nil(t, err)
	assert.Len(t, read.Team, 1)
	assert.Equal(t, models.TeamRoleAdmin, read.Team[0].Role)
	assert.Len(t, read.Repositories, 1)
	assert.Equal(t, "https://github.com/acme/preload", read.Repositories[0].URL)
}

func TestGetUserProjectsOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	projectRepository := repositories.NewProjectRepository(testDB)
	user := integrationtestutil.CreateUser(testDB, "carol")

	for _, name := range []string{"first-project", "second-project"} {
		project := integrationtestutil.CreateProject(testDB, name)
		assert.Nil(t, testDB.Create(&models.UserProject{UserID: user.ID, ProjectID: project.ID, Role: models.TeamRoleAdmin}).Error)
	}

	projects, err := projectRepository.GetUserProjectsWithDetails(user.ID)
	assert.Nil(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "first-project", projects[0].Name)
	assert.Equal(t, "second-project", projects[1].Name)
}

func TestGetUserApplications(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	projectRepository := repositories.NewProjectRepository(testDB)
	user := integrationtestutil.CreateUser(testDB, "dave")

	integrationtestutil.CreateFundingRound(testDB, "9", "Retro Funding 9")
	integrationtestutil.CreateFundingRound(testDB, "10", "Retro Funding 10")

	project := integrationtestutil.CreateProject(testDB, "applied-project")
	deleted := integrationtestutil.CreateProject(testDB, "deleted-applied-project")
	for _, p := range []models.Project{project, deleted} {
		assert.Nil(t, testDB.Create(&models.UserProject{UserID: user.ID, ProjectID: p.ID, Role: models.TeamRoleAdmin}).Error)
	}

	older := models.Application{ProjectID: project.ID, RoundID: "9", AttestationID: "0xolder"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := models.Application{ProjectID: project.ID, RoundID: "10", AttestationID: "0xnewer"}
	assert.Nil(t, testDB.Create(&older).Error)
	assert.Nil(t, testDB.Create(&newer).Error)
	assert.Nil(t, testDB.Create(&models.Application{ProjectID: deleted.ID, RoundID: "9", AttestationID: "0xgone"}).Error)

	assert.Nil(t, projectRepository.SoftDelete(nil, deleted.ID))

	projects, err := projectRepository.GetUserApplications(user.ID)
	assert.Nil(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "applied-project", projects[0].Name)

	// newest submission first, per project
	applications := projects[0].Applications
	assert.Len(t, applications, 2)
	assert.Equal(t, "0xnewer", applications[0].AttestationID)
	assert.Equal(t, "0xolder", applications[1].AttestationID)
}
