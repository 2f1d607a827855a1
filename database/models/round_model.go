package models

import "time"

// FundingRound is a retro funding cycle. Rounds keep the short numeric string
// ids of the upstream program ("3", "5", ...) and are administered out-of-band
// via the CLI.
type FundingRound struct {
	ID        string    `json:"id" gorm:"primarykey;type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
}

func (m FundingRound) TableName() string {
	return "funding_rounds"
}
