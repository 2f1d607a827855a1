package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationCreateRequest struct {
	RoundID       string `json:"roundId" validate:"required"`
	AttestationID string `json:"attestationId" validate:"required"`
}

type ApplicationDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`

	RoundID       string    `json:"roundId"`
	Round         *RoundDTO `json:"round,omitempty"`
	AttestationID string    `json:"attestationId"`

	CreatedAt time.Time `json:"createdAt"`
}
