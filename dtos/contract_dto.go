package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ContractCreateRequest struct {
	ContractAddress string `json:"contractAddress" validate:"required"`
	ChainID         int    `json:"chainId" validate:"required"`

	DeployerAddress   string `json:"deployerAddress" validate:"required"`
	DeploymentHash    string `json:"deploymentHash" validate:"required"`
	VerificationProof string `json:"verificationProof" validate:"required"`
}

type ContractDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`

	ContractAddress string `json:"contractAddress"`
	ChainID         int    `json:"chainId"`

	DeployerAddress   string `json:"deployerAddress"`
	DeploymentHash    string `json:"deploymentHash"`
	VerificationProof string `json:"verificationProof"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
