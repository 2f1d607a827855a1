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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ProjectController struct {
	projectRepository shared.ProjectRepository
	memberRepository  shared.MemberRepository
	projectService    shared.ProjectService
}

func NewProjectController(projectRepository shared.ProjectRepository, memberRepository shared.MemberRepository, projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectRepository: projectRepository,
		memberRepository:  memberRepository,
		projectService:    projectService,
	}
}

// @Summary Create project
// @Security CookieAuth
// @Param body body dtos.ProjectCreateRequest true "Request body"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects [post]
func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	userID, err := shared.GetSessionUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(401, "could not get user id").WithInternal(err)
	}

	newProject := transformer.ProjectCreateRequestToModel(req)
	if err := c.projectService.CreateProject(userID, &newProject); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "project already exists").WithInternal(err)
		}
		if database.IsForeignKeyViolationError(err) {
			return echo.NewHTTPError(400, "unknown user").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ProjectModelToDTO(newProject))
}

// @Summary List my projects
// @Security CookieAuth
// @Success 200 {array} dtos.ProjectDTO
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	userID, err := shared.GetSessionUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(401, "could not get user id").WithInternal(err)
	}

	detailed := ctx.QueryParam("details") == "true"
	if detailed {
		projects, err := c.projectRepository.GetUserProjectsWithDetails(userID)
		if err != nil {
			return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
		}
		return ctx.JSON(200, utils.Map(projects, transformer.ProjectModelToDetailsDTO))
	}

	projects, err := c.projectRepository.GetUserProjects(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(projects, transformer.ProjectModelToDTO))
}

// @Summary Read project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Success 200 {object} dtos.ProjectDetailsDTO
// @Router /projects/{projectID} [get]
func (c *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	return ctx.JSON(200, transformer.ProjectModelToDetailsDTO(project))
}

// @Summary Patch project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.ProjectPatchRequest true "Request body"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [patch]
func (c *ProjectController) Patch(ctx shared.Context) error {
	var req dtos.ProjectPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	if transformer.ApplyProjectPatchRequestToModel(req, &project) {
		if err := c.projectRepository.Update(nil, &project); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(404, "project not found")
			}
			return echo.NewHTTPError(500, "could not update project").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ProjectModelToDTO(project))
}

// @Summary Delete project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Success 200
// @Router /projects/{projectID} [delete]
func (c *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	if err := c.projectService.DeleteProject(project.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}
	return ctx.NoContent(200)
}

// @Summary List project members
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.TeamMemberDTO
// @Router /projects/{projectID}/members [get]
func (c *ProjectController) Members(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	memberships, err := c.memberRepository.ListByProject(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get members of project").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(memberships, transformer.TeamMemberModelToDTO))
}

// @Summary Add project members
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.ProjectAddMembersRequest true "Request body"
// @Success 200
// @Router /projects/{projectID}/members [post]
func (c *ProjectController) AddMembers(ctx shared.Context) error {
	var req dtos.ProjectAddMembersRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	err := c.memberRepository.AddMembers(nil, project.ID, req.UserIDs, "")
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "user is already a member").WithInternal(err)
		}
		if database.IsForeignKeyViolationError(err) {
			return echo.NewHTTPError(400, "unknown user").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not add members").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// @Summary Change a member role
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param userID path string true "User id"
// @Param body body dtos.ProjectChangeRoleRequest true "Request body"
// @Success 200
// @Router /projects/{projectID}/members/{userID} [put]
func (c *ProjectController) ChangeRole(ctx shared.Context) error {
	var req dtos.ProjectChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	userID, err := parseUserIDParam(ctx)
	if err != nil {
		return err
	}

	project := shared.GetProject(ctx)
	if err := c.memberRepository.UpdateRole(nil, project.ID, userID, models.TeamRole(req.Role)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "membership not found")
		}
		return echo.NewHTTPError(500, "could not change role").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// @Summary Remove a project member
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param userID path string true "User id"
// @Success 200
// @Router /projects/{projectID}/members/{userID} [delete]
func (c *ProjectController) RemoveMember(ctx shared.Context) error {
	userID, err := parseUserIDParam(ctx)
	if err != nil {
		return err
	}

	project := shared.GetProject(ctx)
	if err := c.memberRepository.Remove(nil, project.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "membership not found")
		}
		return echo.NewHTTPError(500, "could not remove member").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func parseUserIDParam(ctx shared.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(shared.GetParam(ctx, "userID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid user id").WithInternal(err)
	}
	return userID, nil
}
