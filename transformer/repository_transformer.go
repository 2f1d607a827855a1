package transformer

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
)

func RepositoryCreateRequestToModel(req dtos.RepositoryCreateRequest) models.ProjectRepository {
	return models.ProjectRepository{
		Type:              models.RepositoryType(req.Type),
		URL:               req.URL,
		Name:              req.Name,
		Description:       req.Description,
		Verified:          req.Verified,
		OpenSource:        req.OpenSource,
		ContainsContracts: req.ContainsContracts,
		NpmPackage:        req.NpmPackage,
		Crate:             req.Crate,
	}
}

// RepositoryPatchRequestToUpdates builds the column map for a partial update.
// Only non-nil fields make it into the map.
func RepositoryPatchRequestToUpdates(req dtos.RepositoryPatchRequest) map[string]any {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Verified != nil {
		updates["verified"] = *req.Verified
	}
	if req.OpenSource != nil {
		updates["open_source"] = *req.OpenSource
	}
	if req.ContainsContracts != nil {
		updates["contains_contracts"] = *req.ContainsContracts
	}
	if req.NpmPackage != nil {
		updates["npm_package"] = *req.NpmPackage
	}
	if req.Crate != nil {
		updates["crate"] = *req.Crate
	}
	return updates
}

func RepositoryModelToDTO(repo models.ProjectRepository) dtos.RepositoryDTO {
	return dtos.RepositoryDTO{
		ID:                repo.ID,
		ProjectID:         repo.ProjectID,
		Type:              string(repo.Type),
		URL:               repo.URL,
		Name:              repo.Name,
		Description:       repo.Description,
		Verified:          repo.Verified,
		OpenSource:        repo.OpenSource,
		ContainsContracts: repo.ContainsContracts,
		NpmPackage:        repo.NpmPackage,
		Crate:             repo.Crate,
		CreatedAt:         repo.CreatedAt,
		UpdatedAt:         repo.UpdatedAt,
	}
}
