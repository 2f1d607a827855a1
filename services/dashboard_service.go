package services

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
)

type dashboardService struct {
	projectRepository shared.ProjectRepository
	rewardRepository  shared.RewardRepository
}

func NewDashboardService(projectRepository shared.ProjectRepository, rewardRepository shared.RewardRepository) *dashboardService {
	return &dashboardService{
		projectRepository: projectRepository,
		rewardRepository:  rewardRepository,
	}
}

// BuildDashboard aggregates the user's projects with their application
// history and the rewards granted across those projects. Soft-deleted
// projects are excluded entirely, rewards included.
func (s *dashboardService) BuildDashboard(userID uuid.UUID) (dtos.DashboardDTO, error) {
	projects, err := s.projectRepository.GetUserApplications(userID)
	if err != nil {
		return dtos.DashboardDTO{}, err
	}

	projectIDs := utils.Map(projects, func(p models.Project) uuid.UUID { return p.ID })

	rewards, err := s.rewardRepository.GetByProjectIDs(projectIDs)
	if err != nil {
		return dtos.DashboardDTO{}, err
	}

	totals, err := s.rewardRepository.TotalsByRound(projectIDs)
	if err != nil {
		return dtos.DashboardDTO{}, err
	}

	return dtos.DashboardDTO{
		Projects: utils.Map(projects, func(p models.Project) dtos.DashboardProjectDTO {
			return dtos.DashboardProjectDTO{
				ProjectDTO:   transformer.ProjectModelToDTO(p),
				Applications: utils.Map(p.Applications, transformer.ApplicationModelToDTO),
			}
		}),
		Rewards: utils.Map(rewards, transformer.RewardModelToDTO),
		Totals: utils.Map(totals, func(t shared.RoundTotal) dtos.RoundTotalDTO {
			return dtos.RoundTotalDTO{RoundID: t.RoundID, Total: t.Total}
		}),
	}, nil
}
