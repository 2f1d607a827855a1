package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
)

type FundingRoundRepository struct {
	repository[string, models.FundingRound]
}

func NewFundingRoundRepository(t testingT) *FundingRoundRepository {
	m := &FundingRoundRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
