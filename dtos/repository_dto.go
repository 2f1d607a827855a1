package dtos

import (
	"time"

	"github.com/google/uuid"
)

type RepositoryCreateRequest struct {
	Type string `json:"type" validate:"required,oneof=github package"`
	URL  string `json:"url" validate:"required,url"`

	Name        *string `json:"name"`
	Description *string `json:"description"`

	Verified          bool `json:"verified"`
	OpenSource        bool `json:"openSource"`
	ContainsContracts bool `json:"containsContracts"`
	NpmPackage        bool `json:"npmPackage"`
	Crate             bool `json:"crate"`
}

type RepositoryPatchRequest struct {
	URL string `json:"url" validate:"required,url"`

	Name        *string `json:"name"`
	Description *string `json:"description"`

	Verified          *bool `json:"verified"`
	OpenSource        *bool `json:"openSource"`
	ContainsContracts *bool `json:"containsContracts"`
	NpmPackage        *bool `json:"npmPackage"`
	Crate             *bool `json:"crate"`
}

// RepositoryReplaceRequest replaces the full set of repositories of one type.
type RepositoryReplaceRequest struct {
	Type         string                    `json:"type" validate:"required,oneof=github package"`
	Repositories []RepositoryCreateRequest `json:"repositories" validate:"dive"`
}

type RepositoryDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`

	Name        *string `json:"name"`
	Description *string `json:"description"`

	Verified          bool `json:"verified"`
	OpenSource        bool `json:"openSource"`
	ContainsContracts bool `json:"containsContracts"`
	NpmPackage        bool `json:"npmPackage"`
	Crate             bool `json:"crate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
