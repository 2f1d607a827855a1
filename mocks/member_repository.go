package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
)

type MemberRepository struct {
	repository[uuid.UUID, models.UserProject]
}

func NewMemberRepository(t testingT) *MemberRepository {
	m := &MemberRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MemberRepository) AddMembers(tx shared.DB, projectID uuid.UUID, userIDs []uuid.UUID, role models.TeamRole) error {
	args := m.Called(tx, projectID, userIDs, role)
	return args.Error(0)
}

func (m *MemberRepository) UpdateRole(tx shared.DB, projectID uuid.UUID, userID uuid.UUID, role models.TeamRole) error {
	args := m.Called(tx, projectID, userID, role)
	return args.Error(0)
}

func (m *MemberRepository) Remove(tx shared.DB, projectID uuid.UUID, userID uuid.UUID) error {
	args := m.Called(tx, projectID, userID)
	return args.Error(0)
}

func (m *MemberRepository) GetByUserAndProject(userID uuid.UUID, projectID uuid.UUID) (models.UserProject, error) {
	args := m.Called(userID, projectID)
	return args.Get(0).(models.UserProject), args.Error(1)
}

func (m *MemberRepository) ListByProject(projectID uuid.UUID) ([]models.UserProject, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProject), args.Error(1)
}
