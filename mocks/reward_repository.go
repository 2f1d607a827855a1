package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
)

type RewardRepository struct {
	repository[uuid.UUID, models.Reward]
}

func NewRewardRepository(t testingT) *RewardRepository {
	m := &RewardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RewardRepository) GetByProjectIDs(projectIDs []uuid.UUID) ([]models.Reward, error) {
	args := m.Called(projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reward), args.Error(1)
}

func (m *RewardRepository) TotalsByRound(projectIDs []uuid.UUID) ([]shared.RoundTotal, error) {
	args := m.Called(projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shared.RoundTotal), args.Error(1)
}
