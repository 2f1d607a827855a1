package models

import "github.com/google/uuid"

type RepositoryType string

const (
	RepositoryTypeGithub  RepositoryType = "github"
	RepositoryTypePackage RepositoryType = "package"
)

// ProjectRepository is a code repository or package linked to a project.
// The URL is unique per project. The set of repositories of one type is
// replaced wholesale by the linking flow, never patched incrementally.
type ProjectRepository struct {
	Model
	ProjectID uuid.UUID      `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_repository_url"`
	Project   Project        `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
	Type      RepositoryType `json:"type" gorm:"type:text;not null;default:'github';index"`
	URL       string         `json:"url" gorm:"type:text;not null;uniqueIndex:idx_project_repository_url"`

	Name        *string `json:"name" gorm:"type:text"`
	Description *string `json:"description" gorm:"type:text"`

	Verified          bool `json:"verified" gorm:"not null;default:false"`
	OpenSource        bool `json:"openSource" gorm:"not null;default:false"`
	ContainsContracts bool `json:"containsContracts" gorm:"not null;default:false"`
	NpmPackage        bool `json:"npmPackage" gorm:"not null;default:false"`
	Crate             bool `json:"crate" gorm:"not null;default:false"`
}

func (m ProjectRepository) TableName() string {
	return "project_repositories"
}
