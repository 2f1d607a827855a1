package models

import "github.com/google/uuid"

// ProjectFunding is one historical funding record of a project. The whole
// collection is replaced atomically whenever the funding form is re-submitted.
type ProjectFunding struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	Amount     string  `json:"amount" gorm:"type:text;not null"`
	ReceivedAt *string `json:"receivedAt" gorm:"type:text"`
	Grant      *string `json:"grant" gorm:"type:text"`
	GrantURL   *string `json:"grantUrl" gorm:"type:text"`
	Details    *string `json:"details" gorm:"type:text"`
}

func (m ProjectFunding) TableName() string {
	return "project_funding"
}
