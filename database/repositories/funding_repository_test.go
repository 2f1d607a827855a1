package repositories_test

import (
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/database/repositories"
	"github.com/Pranay-Bhilare/op-atlas/integrationtestutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestReplaceFundingForProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	fundingRepository := repositories.NewFundingRepository(testDB)
	projectRepository := repositories.NewProjectRepository(testDB)
	project := integrationtestutil.CreateProject(testDB, "funding-project")

	t.Run("replacing sets the added funding flag in the same transaction", func(t *testing.T) {
		rows, err := fundingRepository.ReplaceForProject(project.ID, []models.ProjectFunding{
			{Amount: "50000"},
			{Amount: "120000"},
		})
		assert.Nil(t, err)
		assert.Len(t, rows, 2)

		read, err := projectRepository.Read(project.ID)
		assert.Nil(t, err)
		assert.True(t, read.AddedFunding)
	})

	t.Run("an empty history is legal and still records the funding step", func(t *testing.T) {
		rows, err := fundingRepository.ReplaceForProject(project.ID, nil)
		assert.Nil(t, err)
		assert.Empty(t, rows)

		remaining, err := fundingRepository.GetByProjectID(project.ID)
		assert.Nil(t, err)
		assert.Empty(t, remaining)

		read, err := projectRepository.Read(project.ID)
		assert.Nil(t, err)
		assert.True(t, read.AddedFunding)
	})

	t.Run("replacing for an unknown project fails without inserting anything", func(t *testing.T) {
		unknown := uuid.New()
		_, err := fundingRepository.ReplaceForProject(unknown, nil)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("a failing insert leaves the previous history intact", func(t *testing.T) {
		rows, err := fundingRepository.ReplaceForProject(project.ID, []models.ProjectFunding{{Amount: "777"}})
		assert.Nil(t, err)
		assert.Len(t, rows, 1)

		// force a failure: reuse the primary key of the surviving row
		_, err = fundingRepository.ReplaceForProject(project.ID, []models.ProjectFunding{
			{Model: models.Model{ID: rows[0].ID}, Amount: "1"},
			{Model: models.Model{ID: rows[0].ID}, Amount: "2"},
		})
		assert.NotNil(t, err)

		remaining, err := fundingRepository.GetByProjectID(project.ID)
		assert.Nil(t, err)
		assert.Len(t, remaining, 1)
		assert.Equal(t, "777", remaining[0].Amount)
	})
}
