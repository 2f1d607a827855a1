package services_test

import (
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/mocks"
	"github.com/Pranay-Bhilare/op-atlas/services"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBuildDashboard(t *testing.T) {
	userID := uuid.New()

	t.Run("should aggregate projects, rewards and round totals", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		rewardRepository := mocks.NewRewardRepository(t)

		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()
		project.Applications = []models.Application{
			{ProjectID: project.ID, RoundID: "5", AttestationID: "0xattestation"},
		}

		reward := models.Reward{RoundID: "5", ProjectID: project.ID, Amount: "1500"}
		reward.ID = uuid.New()

		projectRepository.On("GetUserApplications", userID).Return([]models.Project{project}, nil)
		rewardRepository.On("GetByProjectIDs", []uuid.UUID{project.ID}).Return([]models.Reward{reward}, nil)
		rewardRepository.On("TotalsByRound", []uuid.UUID{project.ID}).Return([]shared.RoundTotal{
			{RoundID: "5", Total: "1500"},
		}, nil)

		service := services.NewDashboardService(projectRepository, rewardRepository)

		dashboard, err := service.BuildDashboard(userID)

		assert.NoError(t, err)
		assert.Len(t, dashboard.Projects, 1)
		assert.Equal(t, "op-atlas", dashboard.Projects[0].Name)
		assert.Len(t, dashboard.Projects[0].Applications, 1)
		assert.Equal(t, "5", dashboard.Projects[0].Applications[0].RoundID)
		assert.Len(t, dashboard.Rewards, 1)
		assert.Equal(t, "1500", dashboard.Rewards[0].Amount)
		assert.Equal(t, "5", dashboard.Totals[0].RoundID)
		assert.Equal(t, "1500", dashboard.Totals[0].Total)
	})

	t.Run("should return an empty dashboard for a user without projects", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		rewardRepository := mocks.NewRewardRepository(t)

		projectRepository.On("GetUserApplications", userID).Return([]models.Project{}, nil)
		rewardRepository.On("GetByProjectIDs", []uuid.UUID{}).Return([]models.Reward{}, nil)
		rewardRepository.On("TotalsByRound", []uuid.UUID{}).Return([]shared.RoundTotal{}, nil)

		service := services.NewDashboardService(projectRepository, rewardRepository)

		dashboard, err := service.BuildDashboard(userID)

		assert.NoError(t, err)
		assert.Empty(t, dashboard.Projects)
		assert.Empty(t, dashboard.Rewards)
		assert.Empty(t, dashboard.Totals)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		rewardRepository := mocks.NewRewardRepository(t)

		projectRepository.On("GetUserApplications", userID).Return(nil, errors.New("db down"))
		rewardRepository.AssertNotCalled(t, "GetByProjectIDs", mock.Anything)

		service := services.NewDashboardService(projectRepository, rewardRepository)

		_, err := service.BuildDashboard(userID)

		assert.Error(t, err)
	})
}
