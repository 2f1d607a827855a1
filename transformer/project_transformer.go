// Copyright (C) 2025 the op-atlas authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transformer

import (
	"time"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/utils"
)

func ProjectCreateRequestToModel(projectCreate dtos.ProjectCreateRequest) models.Project {
	return models.Project{
		Name:         projectCreate.Name,
		Description:  projectCreate.Description,
		Category:     projectCreate.Category,
		ThumbnailURL: projectCreate.ThumbnailURL,
		BannerURL:    projectCreate.BannerURL,
		Website:      projectCreate.Website,
		Twitter:      projectCreate.Twitter,
		Mirror:       projectCreate.Mirror,

		OpenSourceObserverSlug: projectCreate.OpenSourceObserverSlug,
	}
}

func ApplyProjectPatchRequestToModel(projectPatch dtos.ProjectPatchRequest, project *models.Project) bool {
	updated := false
	if projectPatch.Name != nil {
		project.Name = *projectPatch.Name
		updated = true
	}
	if projectPatch.Description != nil {
		project.Description = *projectPatch.Description
		updated = true
	}
	if projectPatch.Category != nil {
		project.Category = projectPatch.Category
		updated = true
	}
	if projectPatch.Website != nil {
		project.Website = *projectPatch.Website
		updated = true
	}
	if projectPatch.ThumbnailURL != nil {
		project.ThumbnailURL = projectPatch.ThumbnailURL
		updated = true
	}
	if projectPatch.BannerURL != nil {
		project.BannerURL = projectPatch.BannerURL
		updated = true
	}
	if projectPatch.Twitter != nil {
		project.Twitter = projectPatch.Twitter
		updated = true
	}
	if projectPatch.Mirror != nil {
		project.Mirror = projectPatch.Mirror
		updated = true
	}
	if projectPatch.OpenSourceObserverSlug != nil {
		project.OpenSourceObserverSlug = projectPatch.OpenSourceObserverSlug
		updated = true
	}
	return updated
}

func ProjectModelToDTO(project models.Project) dtos.ProjectDTO {
	var deletedAt *time.Time
	if project.DeletedAt.Valid {
		deletedAt = utils.Ptr(project.DeletedAt.Time)
	}

	return dtos.ProjectDTO{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		Category:     project.Category,
		ThumbnailURL: project.ThumbnailURL,
		BannerURL:    project.BannerURL,
		Website:      project.Website,
		Twitter:      project.Twitter,
		Mirror:       project.Mirror,

		OpenSourceObserverSlug: project.OpenSourceObserverSlug,

		AddedFunding: project.AddedFunding,
		DeletedAt:    deletedAt,

		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

func ProjectModelToDetailsDTO(project models.Project) dtos.ProjectDetailsDTO {
	return dtos.ProjectDetailsDTO{
		ProjectDTO:   ProjectModelToDTO(project),
		Team:         utils.Map(project.Team, TeamMemberModelToDTO),
		Repositories: utils.Map(project.Repositories, RepositoryModelToDTO),
		Contracts:    utils.Map(project.Contracts, ContractModelToDTO),
		Funding:      utils.Map(project.Funding, FundingModelToDTO),
		Snapshots:    utils.Map(project.Snapshots, SnapshotModelToDTO),
		Applications: utils.Map(project.Applications, ApplicationModelToDTO),
	}
}
