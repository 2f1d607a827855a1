package transformer

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
)

func FundingEntryRequestToModel(req dtos.FundingEntryRequest) models.ProjectFunding {
	return models.ProjectFunding{
		Amount:     req.Amount,
		ReceivedAt: req.ReceivedAt,
		Grant:      req.Grant,
		GrantURL:   req.GrantURL,
		Details:    req.Details,
	}
}

func FundingModelToDTO(funding models.ProjectFunding) dtos.FundingDTO {
	return dtos.FundingDTO{
		ID:         funding.ID,
		ProjectID:  funding.ProjectID,
		Amount:     funding.Amount,
		ReceivedAt: funding.ReceivedAt,
		Grant:      funding.Grant,
		GrantURL:   funding.GrantURL,
		Details:    funding.Details,
		CreatedAt:  funding.CreatedAt,
	}
}
