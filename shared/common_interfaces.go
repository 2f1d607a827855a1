// Copyright (C) 2025 the op-atlas authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/google/uuid"
	client "github.com/ory/client-go"
)

type AuthSession interface {
	GetUserID() string
}

type AdminClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	GetIdentity(ctx context.Context, userID string) (client.Identity, error)
}

// ProjectRepository is the sole arbiter of consistency for the project
// aggregate. Listing operations exclude soft-deleted projects; Read does not,
// so historical joins (applications, snapshots) stay addressable.
type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	Update(tx DB, project *models.Project) error
	SoftDelete(tx DB, projectID uuid.UUID) error
	GetUserProjects(userID uuid.UUID) ([]models.Project, error)
	GetUserProjectsWithDetails(userID uuid.UUID) ([]models.Project, error)
	GetUserApplications(userID uuid.UUID) ([]models.Project, error)
}

type MemberRepository interface {
	utils.Repository[uuid.UUID, models.UserProject, DB]
	AddMembers(tx DB, projectID uuid.UUID, userIDs []uuid.UUID, role models.TeamRole) error
	UpdateRole(tx DB, projectID uuid.UUID, userID uuid.UUID, role models.TeamRole) error
	Remove(tx DB, projectID uuid.UUID, userID uuid.UUID) error
	GetByUserAndProject(userID uuid.UUID, projectID uuid.UUID) (models.UserProject, error)
	ListByProject(projectID uuid.UUID) ([]models.UserProject, error)
}

type RepoRepository interface {
	utils.Repository[uuid.UUID, models.ProjectRepository, DB]
	FindByProjectAndURL(projectID uuid.UUID, url string) (models.ProjectRepository, error)
	GetByProjectAndType(projectID uuid.UUID, repositoryType models.RepositoryType) ([]models.ProjectRepository, error)
	Remove(tx DB, projectID uuid.UUID, url string) error
	UpdateByURL(tx DB, projectID uuid.UUID, url string, updates map[string]any) (models.ProjectRepository, error)
	ReplaceForType(projectID uuid.UUID, repositoryType models.RepositoryType, repos []models.ProjectRepository) ([]models.ProjectRepository, error)
}

type ContractRepository interface {
	utils.Repository[uuid.UUID, models.ProjectContract, DB]
	Remove(tx DB, projectID uuid.UUID, contractAddress string, chainID int) error
	FindByDeployer(projectID uuid.UUID, deployerAddress string) ([]models.ProjectContract, error)
}

type FundingRepository interface {
	utils.Repository[uuid.UUID, models.ProjectFunding, DB]
	GetByProjectID(projectID uuid.UUID) ([]models.ProjectFunding, error)
	ReplaceForProject(projectID uuid.UUID, rows []models.ProjectFunding) ([]models.ProjectFunding, error)
}

type SnapshotRepository interface {
	utils.Repository[uuid.UUID, models.ProjectSnapshot, DB]
	GetByProjectID(projectID uuid.UUID) ([]models.ProjectSnapshot, error)
}

type ApplicationRepository interface {
	utils.Repository[uuid.UUID, models.Application, DB]
	GetByProjectID(projectID uuid.UUID) ([]models.Application, error)
}

type FundingRoundRepository interface {
	utils.Repository[string, models.FundingRound, DB]
}

type UserRepository interface {
	utils.Repository[uuid.UUID, models.User, DB]
	FindByFarcasterID(farcasterID string) (models.User, error)
}

type RoundTotal struct {
	RoundID string `json:"roundId"`
	Total   string `json:"total"`
}

type RewardRepository interface {
	utils.Repository[uuid.UUID, models.Reward, DB]
	GetByProjectIDs(projectIDs []uuid.UUID) ([]models.Reward, error)
	TotalsByRound(projectIDs []uuid.UUID) ([]RoundTotal, error)
}

type ProjectService interface {
	CreateProject(userID uuid.UUID, project *models.Project) error
	DeleteProject(projectID uuid.UUID) error
}

type ApplicationService interface {
	CreateApplication(projectID uuid.UUID, roundID string, attestationID string) (models.Application, error)
}

type DashboardService interface {
	BuildDashboard(userID uuid.UUID) (dtos.DashboardDTO, error)
}
