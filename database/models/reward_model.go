package models

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a retro funding reward granted to a project in a round. Amounts
// are kept as numeric strings to avoid float rounding on token amounts.
type Reward struct {
	Model
	RoundID string       `json:"roundId" gorm:"type:text;not null;index"`
	Round   FundingRound `json:"-" gorm:"foreignKey:RoundID;constraint:OnDelete:CASCADE;"`

	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	Amount    string     `json:"amount" gorm:"type:numeric;not null"`
	ClaimedAt *time.Time `json:"claimedAt"`
}

func (m Reward) TableName() string {
	return "rewards"
}
