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

package controllers

import (
	"errors"
	"fmt"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type RepoController struct {
	repoRepository shared.RepoRepository
}

func NewRepoController(repoRepository shared.RepoRepository) *RepoController {
	return &RepoController{
		repoRepository: repoRepository,
	}
}

// @Summary List repositories of a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param type query string false "Repository type (github or package)"
// @Success 200 {array} dtos.RepositoryDTO
// @Router /projects/{projectID}/repos [get]
func (c *RepoController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	repositoryType := models.RepositoryType(ctx.QueryParam("type"))
	if repositoryType == "" {
		repositoryType = models.RepositoryTypeGithub
	}
	if repositoryType != models.RepositoryTypeGithub && repositoryType != models.RepositoryTypePackage {
		return echo.NewHTTPError(400, "invalid repository type")
	}

	repos, err := c.repoRepository.GetByProjectAndType(project.ID, repositoryType)
	if err != nil {
		return echo.NewHTTPError(500, "could not list repositories").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(repos, transformer.RepositoryModelToDTO))
}

// @Summary Add a repository to a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.RepositoryCreateRequest true "Request body"
// @Success 200 {object} dtos.RepositoryDTO
// @Router /projects/{projectID}/repos [post]
func (c *RepoController) Create(ctx shared.Context) error {
	var req dtos.RepositoryCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	repo := transformer.RepositoryCreateRequestToModel(req)
	repo.ProjectID = project.ID

	if err := c.repoRepository.Create(nil, &repo); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "repository url already linked").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create repository").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RepositoryModelToDTO(repo))
}

// @Summary Patch a repository by url
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.RepositoryPatchRequest true "Request body"
// @Success 200 {object} dtos.RepositoryDTO
// @Router /projects/{projectID}/repos [patch]
func (c *RepoController) Patch(ctx shared.Context) error {
	var req dtos.RepositoryPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updates := transformer.RepositoryPatchRequestToUpdates(req)
	if len(updates) == 0 {
		return echo.NewHTTPError(400, "nothing to update")
	}

	project := shared.GetProject(ctx)
	repo, err := c.repoRepository.UpdateByURL(nil, project.ID, req.URL, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "repository not found")
		}
		return echo.NewHTTPError(500, "could not update repository").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RepositoryModelToDTO(repo))
}

// @Summary Remove a repository by url
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param url query string true "Repository url"
// @Success 200
// @Router /projects/{projectID}/repos [delete]
func (c *RepoController) Delete(ctx shared.Context) error {
	url := ctx.QueryParam("url")
	if url == "" {
		return echo.NewHTTPError(400, "url is required")
	}

	project := shared.GetProject(ctx)
	if err := c.repoRepository.Remove(nil, project.ID, url); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "repository not found")
		}
		return echo.NewHTTPError(500, "could not remove repository").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// @Summary Replace all repositories of one type
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.RepositoryReplaceRequest true "Request body"
// @Success 200 {array} dtos.RepositoryDTO
// @Router /projects/{projectID}/repos [put]
func (c *RepoController) Replace(ctx shared.Context) error {
	var req dtos.RepositoryReplaceRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	repos := utils.Map(req.Repositories, transformer.RepositoryCreateRequestToModel)

	replaced, err := c.repoRepository.ReplaceForType(project.ID, models.RepositoryType(req.Type), repos)
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "duplicate repository url in new set").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not replace repositories").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(replaced, transformer.RepositoryModelToDTO))
}
