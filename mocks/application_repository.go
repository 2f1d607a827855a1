package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/google/uuid"
)

type ApplicationRepository struct {
	repository[uuid.UUID, models.Application]
}

func NewApplicationRepository(t testingT) *ApplicationRepository {
	m := &ApplicationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ApplicationRepository) GetByProjectID(projectID uuid.UUID) ([]models.Application, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}
