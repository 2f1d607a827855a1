package services

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type applicationService struct {
	applicationRepository shared.ApplicationRepository
	roundRepository       shared.FundingRoundRepository
}

func NewApplicationService(applicationRepository shared.ApplicationRepository, roundRepository shared.FundingRoundRepository) *applicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		roundRepository:       roundRepository,
	}
}

// CreateApplication appends a submission record. The round must exist; the
// check happens up front so the caller gets a useful error instead of a raw
// foreign key violation. Resubmitting to the same round creates a new record.
func (s *applicationService) CreateApplication(projectID uuid.UUID, roundID string, attestationID string) (models.Application, error) {
	round, err := s.roundRepository.Read(roundID)
	if err != nil {
		return models.Application{}, errors.Wrap(err, "could not find funding round")
	}

	application := models.Application{
		ProjectID:     projectID,
		RoundID:       round.ID,
		AttestationID: attestationID,
	}
	if err := s.applicationRepository.Create(nil, &application); err != nil {
		return models.Application{}, err
	}
	application.Round = round
	return application, nil
}
