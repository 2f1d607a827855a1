package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
)

type ProjectRepository struct {
	repository[uuid.UUID, models.Project]
}

func NewProjectRepository(t testingT) *ProjectRepository {
	m := &ProjectRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProjectRepository) Update(tx shared.DB, project *models.Project) error {
	args := m.Called(tx, project)
	return args.Error(0)
}

func (m *ProjectRepository) SoftDelete(tx shared.DB, projectID uuid.UUID) error {
	args := m.Called(tx, projectID)
	return args.Error(0)
}

func (m *ProjectRepository) GetUserProjects(userID uuid.UUID) ([]models.Project, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *ProjectRepository) GetUserProjectsWithDetails(userID uuid.UUID) ([]models.Project, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *ProjectRepository) GetUserApplications(userID uuid.UUID) ([]models.Project, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}
