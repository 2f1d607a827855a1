package transformer

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/utils"
)

func ApplicationModelToDTO(application models.Application) dtos.ApplicationDTO {
	var round *dtos.RoundDTO
	if application.Round.ID != "" {
		round = utils.Ptr(RoundModelToDTO(application.Round))
	}

	return dtos.ApplicationDTO{
		ID:            application.ID,
		ProjectID:     application.ProjectID,
		RoundID:       application.RoundID,
		Round:         round,
		AttestationID: application.AttestationID,
		CreatedAt:     application.CreatedAt,
	}
}

func RoundModelToDTO(round models.FundingRound) dtos.RoundDTO {
	return dtos.RoundDTO{
		ID:          round.ID,
		Name:        round.Name,
		Description: round.Description,
		StartsAt:    round.StartsAt,
		EndsAt:      round.EndsAt,
	}
}
