package dtos

import (
	"time"

	"github.com/google/uuid"
)

type FundingEntryRequest struct {
	Amount     string  `json:"amount" validate:"required"`
	ReceivedAt *string `json:"receivedAt"`
	Grant      *string `json:"grant"`
	GrantURL   *string `json:"grantUrl" validate:"omitempty,url"`
	Details    *string `json:"details"`
}

// FundingReplaceRequest replaces the whole funding history of a project. An
// empty list is valid and clears the history.
type FundingReplaceRequest struct {
	Funding []FundingEntryRequest `json:"funding" validate:"dive"`
}

type FundingDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`

	Amount     string  `json:"amount"`
	ReceivedAt *string `json:"receivedAt"`
	Grant      *string `json:"grant"`
	GrantURL   *string `json:"grantUrl"`
	Details    *string `json:"details"`

	CreatedAt time.Time `json:"createdAt"`
}
