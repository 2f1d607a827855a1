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

func TestCreateProject(t *testing.T) {
	userID := uuid.New()

	t.Run("should add the creator as admin in the same transaction", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)

		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()

		projectRepository.On("Transaction", mock.Anything).Return(nil)
		projectRepository.On("Create", shared.DB(nil), &project).Return(nil)
		memberRepository.On("AddMembers", shared.DB(nil), project.ID, []uuid.UUID{userID}, models.TeamRoleAdmin).Return(nil)

		service := services.NewProjectService(projectRepository, memberRepository)

		err := service.CreateProject(userID, &project)

		assert.NoError(t, err)
	})

	t.Run("should not add a membership when the project insert fails", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)

		project := models.Project{Name: "op-atlas"}

		projectRepository.On("Transaction", mock.Anything).Return(nil)
		projectRepository.On("Create", shared.DB(nil), &project).Return(errors.New("insert failed"))

		service := services.NewProjectService(projectRepository, memberRepository)

		err := service.CreateProject(userID, &project)

		assert.Error(t, err)
		memberRepository.AssertNotCalled(t, "AddMembers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail the whole transaction when the membership insert fails", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)

		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()

		projectRepository.On("Transaction", mock.Anything).Return(nil)
		projectRepository.On("Create", shared.DB(nil), &project).Return(nil)
		memberRepository.On("AddMembers", shared.DB(nil), project.ID, []uuid.UUID{userID}, models.TeamRoleAdmin).Return(errors.New("membership insert failed"))

		service := services.NewProjectService(projectRepository, memberRepository)

		err := service.CreateProject(userID, &project)

		assert.Error(t, err)
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("should soft delete by id", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)

		projectID := uuid.New()
		projectRepository.On("SoftDelete", shared.DB(nil), projectID).Return(nil)

		service := services.NewProjectService(projectRepository, memberRepository)

		err := service.DeleteProject(projectID)

		assert.NoError(t, err)
	})
}
