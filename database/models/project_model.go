package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Project is the funded entity. It owns its repositories, contracts, funding
// history, snapshots and applications; membership is modeled via UserProject.
//
// Projects are never physically removed: DeletedAt is set instead, so that
// applications, snapshots and funding rows stay addressable for history.
type Project struct {
	Model
	Name        string  `json:"name" gorm:"type:text;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Category    *string `json:"category" gorm:"type:text"`

	ThumbnailURL *string        `json:"thumbnailUrl" gorm:"type:text"`
	BannerURL    *string        `json:"bannerUrl" gorm:"type:text"`
	Website      pq.StringArray `json:"website" gorm:"type:text[]"`
	Twitter      *string        `json:"twitter" gorm:"type:text"`
	Mirror       *string        `json:"mirror" gorm:"type:text"`

	OpenSourceObserverSlug *string `json:"openSourceObserverSlug" gorm:"type:text"`

	// set once the funding history has been imported at least once
	AddedFunding bool `json:"addedFunding" gorm:"not null;default:false"`

	DeletedAt gorm.DeletedAt `json:"deletedAt" gorm:"index"`

	Team         []UserProject       `json:"team" gorm:"foreignKey:ProjectID"`
	Repositories []ProjectRepository `json:"repos" gorm:"foreignKey:ProjectID"`
	Contracts    []ProjectContract   `json:"contracts" gorm:"foreignKey:ProjectID"`
	Funding      []ProjectFunding    `json:"funding" gorm:"foreignKey:ProjectID"`
	Snapshots    []ProjectSnapshot   `json:"snapshots" gorm:"foreignKey:ProjectID"`
	Applications []Application       `json:"applications" gorm:"foreignKey:ProjectID"`
}

func (m Project) TableName() string {
	return "projects"
}
