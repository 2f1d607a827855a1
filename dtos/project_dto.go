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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ProjectCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    *string `json:"category"`

	ThumbnailURL *string  `json:"thumbnailUrl" validate:"omitempty,url"`
	BannerURL    *string  `json:"bannerUrl" validate:"omitempty,url"`
	Website      []string `json:"website" validate:"dive,url"`
	Twitter      *string  `json:"twitter"`
	Mirror       *string  `json:"mirror"`

	OpenSourceObserverSlug *string `json:"openSourceObserverSlug"`
}

type ProjectPatchRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Website     *[]string `json:"website" validate:"omitempty,dive,url"`

	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url"`
	BannerURL    *string `json:"bannerUrl" validate:"omitempty,url"`
	Twitter      *string `json:"twitter"`
	Mirror       *string `json:"mirror"`

	OpenSourceObserverSlug *string `json:"openSourceObserverSlug"`
}

type ProjectChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

type ProjectAddMembersRequest struct {
	UserIDs []uuid.UUID `json:"userIds" validate:"required,min=1"`
}

type ProjectDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    *string   `json:"category"`

	ThumbnailURL *string  `json:"thumbnailUrl"`
	BannerURL    *string  `json:"bannerUrl"`
	Website      []string `json:"website"`
	Twitter      *string  `json:"twitter"`
	Mirror       *string  `json:"mirror"`

	OpenSourceObserverSlug *string `json:"openSourceObserverSlug"`

	AddedFunding bool       `json:"addedFunding"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProjectDetailsDTO struct {
	ProjectDTO
	Team         []TeamMemberDTO  `json:"team"`
	Repositories []RepositoryDTO  `json:"repos"`
	Contracts    []ContractDTO    `json:"contracts"`
	Funding      []FundingDTO     `json:"funding"`
	Snapshots    []SnapshotDTO    `json:"snapshots"`
	Applications []ApplicationDTO `json:"applications"`
}
