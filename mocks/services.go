package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ProjectService struct {
	mock.Mock
}

func NewProjectService(t testingT) *ProjectService {
	m := &ProjectService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProjectService) CreateProject(userID uuid.UUID, project *models.Project) error {
	args := m.Called(userID, project)
	return args.Error(0)
}

func (m *ProjectService) DeleteProject(projectID uuid.UUID) error {
	args := m.Called(projectID)
	return args.Error(0)
}

type ApplicationService struct {
	mock.Mock
}

func NewApplicationService(t testingT) *ApplicationService {
	m := &ApplicationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ApplicationService) CreateApplication(projectID uuid.UUID, roundID string, attestationID string) (models.Application, error) {
	args := m.Called(projectID, roundID, attestationID)
	return args.Get(0).(models.Application), args.Error(1)
}

type DashboardService struct {
	mock.Mock
}

func NewDashboardService(t testingT) *DashboardService {
	m := &DashboardService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DashboardService) BuildDashboard(userID uuid.UUID) (dtos.DashboardDTO, error) {
	args := m.Called(userID)
	return args.Get(0).(dtos.DashboardDTO), args.Error(1)
}
