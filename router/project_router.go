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

package router

import (
	"github.com/Pranay-Bhilare/op-atlas/controllers"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/middlewares"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	apiV1Router APIV1Router,
	projectController *controllers.ProjectController,
	repoController *controllers.RepoController,
	contractController *controllers.ContractController,
	fundingController *controllers.FundingController,
	snapshotController *controllers.SnapshotController,
	applicationController *controllers.ApplicationController,
	projectRepository shared.ProjectRepository,
	memberRepository shared.MemberRepository,
) ProjectRouter {
	sessionRequired := middlewares.SessionRequiredMiddleware()

	apiV1Router.POST("/projects/", projectController.Create, sessionRequired)
	apiV1Router.GET("/projects/", projectController.List, sessionRequired)

	/**
	Project scoped router
	All routes below this line are scoped to a specific project and require
	at least member role.
	*/
	projectScopedRBAC := middlewares.ProjectAccessControlFactory(memberRepository)

	projectRouter := apiV1Router.Group.Group("/projects/:projectID",
		middlewares.ProjectMiddleware(projectRepository),
		projectScopedRBAC(models.TeamRoleMember),
	)

	projectRouter.GET("/", projectController.Read)
	projectRouter.PATCH("/", projectController.Patch)
	projectRouter.GET("/members/", projectController.Members)

	projectRouter.GET("/repos/", repoController.List)
	projectRouter.POST("/repos/", repoController.Create)
	projectRouter.PATCH("/repos/", repoController.Patch)
	projectRouter.PUT("/repos/", repoController.Replace)
	projectRouter.DELETE("/repos/", repoController.Delete)

	projectRouter.GET("/contracts/", contractController.ListByDeployer)
	projectRouter.POST("/contracts/", contractController.Create)
	projectRouter.DELETE("/contracts/:chainID/:address/", contractController.Delete)

	projectRouter.GET("/funding/", fundingController.List)
	projectRouter.PUT("/funding/", fundingController.Replace)

	projectRouter.GET("/snapshots/", snapshotController.List)
	projectRouter.POST("/snapshots/", snapshotController.Create)

	projectRouter.GET("/applications/", applicationController.List)
	projectRouter.POST("/applications/", applicationController.Create)

	// destructive operations and team management need the admin role
	adminRequired := projectRouter.Group("", projectScopedRBAC(models.TeamRoleAdmin))
	adminRequired.DELETE("/", projectController.Delete)
	adminRequired.POST("/members/", projectController.AddMembers)
	adminRequired.PUT("/members/:userID/", projectController.ChangeRole)
	adminRequired.DELETE("/members/:userID/", projectController.RemoveMember)

	return ProjectRouter{Group: projectRouter}
}
