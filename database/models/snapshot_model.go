package models

import "github.com/google/uuid"

// ProjectSnapshot is an immutable evidence record: the ipfs hash of the
// published metadata and the id of the attestation referencing it.
// Snapshots are append-only.
type ProjectSnapshot struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	IpfsHash      string `json:"ipfsHash" gorm:"type:text;not null"`
	AttestationID string `json:"attestationId" gorm:"type:text;not null"`
}

func (m ProjectSnapshot) TableName() string {
	return "project_snapshots"
}
