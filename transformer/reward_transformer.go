package transformer

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
)

func RewardModelToDTO(reward models.Reward) dtos.RewardDTO {
	return dtos.RewardDTO{
		ID:        reward.ID.String(),
		RoundID:   reward.RoundID,
		ProjectID: reward.ProjectID.String(),
		Amount:    reward.Amount,
		ClaimedAt: reward.ClaimedAt,
		CreatedAt: reward.CreatedAt,
	}
}
