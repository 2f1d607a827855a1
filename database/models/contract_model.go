package models

import "github.com/google/uuid"

// ProjectContract is an on-chain contract claimed by a project, identified by
// the (contract address, chain id) pair within the project.
type ProjectContract struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_contract"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	ContractAddress string `json:"contractAddress" gorm:"type:text;not null;uniqueIndex:idx_project_contract"`
	ChainID         int    `json:"chainId" gorm:"not null;uniqueIndex:idx_project_contract"`

	DeployerAddress   string `json:"deployerAddress" gorm:"type:text;not null;index"`
	DeploymentHash    string `json:"deploymentHash" gorm:"type:text;not null"`
	VerificationProof string `json:"verificationProof" gorm:"type:text;not null"`
}

func (m ProjectContract) TableName() string {
	return "project_contracts"
}
