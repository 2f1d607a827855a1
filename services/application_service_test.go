package services_test

import (
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/mocks"
	"github.com/Pranay-Bhilare/op-atlas/services"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateApplication(t *testing.T) {
	projectID := uuid.New()

	t.Run("should refuse a submission to an unknown round", func(t *testing.T) {
		applicationRepository := mocks.NewApplicationRepository(t)
		roundRepository := mocks.NewFundingRoundRepository(t)

		roundRepository.On("Read", "999").Return(models.FundingRound{}, gorm.ErrRecordNotFound)

		service := services.NewApplicationService(applicationRepository, roundRepository)

		_, err := service.CreateApplication(projectID, "999", "0xattestation")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.ErrorContains(t, err, "could not find funding round")
		applicationRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should append a submission and return it with the round attached", func(t *testing.T) {
		applicationRepository := mocks.NewApplicationRepository(t)
		roundRepository := mocks.NewFundingRoundRepository(t)

		round := models.FundingRound{ID: "5", Name: "Retro Funding 5"}
		roundRepository.On("Read", "5").Return(round, nil)
		applicationRepository.On("Create", shared.DB(nil), mock.AnythingOfType("*models.Application")).Run(func(args mock.Arguments) {
			application := args.Get(1).(*models.Application)
			application.ID = uuid.New()
		}).Return(nil)

		service := services.NewApplicationService(applicationRepository, roundRepository)

		application, err := service.CreateApplication(projectID, "5", "0xattestation")

		assert.NoError(t, err)
		assert.Equal(t, projectID, application.ProjectID)
		assert.Equal(t, "5", application.RoundID)
		assert.Equal(t, "0xattestation", application.AttestationID)
		assert.Equal(t, round, application.Round)
		assert.NotEqual(t, uuid.Nil, application.ID)
	})
}
