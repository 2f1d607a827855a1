package models

import "github.com/google/uuid"

// Application records a project's submission to a funding round. Applications
// are immutable once created; there is no update or delete operation.
type Application struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	RoundID string       `json:"roundId" gorm:"type:text;not null;index"`
	Round   FundingRound `json:"-" gorm:"foreignKey:RoundID;constraint:OnDelete:CASCADE;"`

	AttestationID string `json:"attestationId" gorm:"type:text;not null"`
}

func (m Application) TableName() string {
	return "applications"
}
