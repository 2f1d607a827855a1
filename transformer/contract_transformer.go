package transformer

import (
	"strings"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
)

// ContractCreateRequestToModel lowercases addresses so the uniqueness
// constraint on (project, address, chain) cannot be bypassed by casing.
func ContractCreateRequestToModel(req dtos.ContractCreateRequest) models.ProjectContract {
	return models.ProjectContract{
		ContractAddress:   strings.ToLower(req.ContractAddress),
		ChainID:           req.ChainID,
		DeployerAddress:   strings.ToLower(req.DeployerAddress),
		DeploymentHash:    req.DeploymentHash,
		VerificationProof: req.VerificationProof,
	}
}

func ContractModelToDTO(contract models.ProjectContract) dtos.ContractDTO {
	return dtos.ContractDTO{
		ID:                contract.ID,
		ProjectID:         contract.ProjectID,
		ContractAddress:   contract.ContractAddress,
		ChainID:           contract.ChainID,
		DeployerAddress:   contract.DeployerAddress,
		DeploymentHash:    contract.DeploymentHash,
		VerificationProof: contract.VerificationProof,
		CreatedAt:         contract.CreatedAt,
		UpdatedAt:         contract.UpdatedAt,
	}
}
