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

package services

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
)

type projectService struct {
	projectRepository shared.ProjectRepository
	memberRepository  shared.MemberRepository
}

func NewProjectService(projectRepository shared.ProjectRepository, memberRepository shared.MemberRepository) *projectService {
	return &projectService{
		projectRepository: projectRepository,
		memberRepository:  memberRepository,
	}
}

// CreateProject inserts the project and the creator's admin membership in one
// transaction. A project without an admin never becomes visible.
func (s *projectService) CreateProject(userID uuid.UUID, project *models.Project) error {
	return s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Create(tx, project); err != nil {
			return err
		}
		return s.memberRepository.AddMembers(tx, project.ID, []uuid.UUID{userID}, models.TeamRoleAdmin)
	})
}

func (s *projectService) DeleteProject(projectID uuid.UUID) error {
	return s.projectRepository.SoftDelete(nil, projectID)
}
