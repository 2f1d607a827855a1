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

package transformer_test

import (
	"testing"
	"time"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestApplyProjectPatchRequestToModel(t *testing.T) {
	t.Run("should report no update for an empty patch", func(t *testing.T) {
		project := models.Project{Name: "op-atlas", Description: "retro funding hub"}

		updated := transformer.ApplyProjectPatchRequestToModel(dtos.ProjectPatchRequest{}, &project)

		assert.False(t, updated)
		assert.Equal(t, "op-atlas", project.Name)
		assert.Equal(t, "retro funding hub", project.Description)
	})

	t.Run("should only touch the provided fields", func(t *testing.T) {
		project := models.Project{
			Name:        "op-atlas",
			Description: "retro funding hub",
			Website:     []string{"https://atlas.example.com"},
		}

		updated := transformer.ApplyProjectPatchRequestToModel(dtos.ProjectPatchRequest{
			Name:    utils.Ptr("atlas"),
			Website: utils.Ptr([]string{"https://atlas.example.com", "https://docs.example.com"}),
		}, &project)

		assert.True(t, updated)
		assert.Equal(t, "atlas", project.Name)
		assert.Equal(t, "retro funding hub", project.Description)
		assert.Len(t, project.Website, 2)
	})

	t.Run("should allow clearing optional fields to empty strings", func(t *testing.T) {
		project := models.Project{Name: "op-atlas", Twitter: utils.Ptr("@atlas")}

		updated := transformer.ApplyProjectPatchRequestToModel(dtos.ProjectPatchRequest{
			Twitter: utils.Ptr(""),
		}, &project)

		assert.True(t, updated)
		assert.Equal(t, "", *project.Twitter)
	})
}

func TestProjectModelToDTO(t *testing.T) {
	t.Run("should expose the deletion timestamp of a soft deleted project", func(t *testing.T) {
		deletedAt := time.Now()
		project := models.Project{
			Name:      "op-atlas",
			DeletedAt: gorm.DeletedAt{Time: deletedAt, Valid: true},
		}

		dto := transformer.ProjectModelToDTO(project)

		if assert.NotNil(t, dto.DeletedAt) {
			assert.WithinDuration(t, deletedAt, *dto.DeletedAt, time.Second)
		}
	})

	t.Run("should omit the deletion timestamp of a live project", func(t *testing.T) {
		dto := transformer.ProjectModelToDTO(models.Project{Name: "op-atlas"})

		assert.Nil(t, dto.DeletedAt)
	})
}

func TestRepositoryPatchRequestToUpdates(t *testing.T) {
	t.Run("should build a column map from the non-nil fields only", func(t *testing.T) {
		updates := transformer.RepositoryPatchRequestToUpdates(dtos.RepositoryPatchRequest{
			Name:     utils.Ptr("atlas-contracts"),
			Verified: utils.Ptr(true),
		})

		assert.Equal(t, map[string]any{
			"name":     "atlas-contracts",
			"verified": true,
		}, updates)
	})

	t.Run("should stay empty for an empty patch", func(t *testing.T) {
		assert.Empty(t, transformer.RepositoryPatchRequestToUpdates(dtos.RepositoryPatchRequest{}))
	})
}
