package dtos

import (
	"time"

	"github.com/google/uuid"
)

type SnapshotCreateRequest struct {
	IpfsHash      string `json:"ipfsHash" validate:"required"`
	AttestationID string `json:"attestationId" validate:"required"`
}

type SnapshotDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`

	IpfsHash      string `json:"ipfsHash"`
	AttestationID string `json:"attestationId"`

	CreatedAt time.Time `json:"createdAt"`
}
