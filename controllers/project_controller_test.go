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

package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/auth"
	"github.com/Pranay-Bhilare/op-atlas/controllers"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/mocks"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newJSONContext(t *testing.T, method, body string) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProjectCreate(t *testing.T) {
	t.Run("should create the project and return the dto", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		userID := uuid.New()
		projectService.On("CreateProject", userID, mock.AnythingOfType("*models.Project")).Run(func(args mock.Arguments) {
			project := args.Get(1).(*models.Project)
			project.ID = uuid.New()
		}).Return(nil)

		ctx, rec := newJSONContext(t, http.MethodPost, `{"name":"op-atlas","description":"retro funding hub"}`)
		shared.SetSession(ctx, auth.NewSession(userID.String()))

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var dto dtos.ProjectDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, "op-atlas", dto.Name)
		assert.NotEqual(t, uuid.Nil, dto.ID)
	})

	t.Run("should map a duplicate project to 409", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		userID := uuid.New()
		projectService.On("CreateProject", userID, mock.AnythingOfType("*models.Project")).
			Return(&pgconn.PgError{Code: "23505"})

		ctx, _ := newJSONContext(t, http.MethodPost, `{"name":"op-atlas","description":"retro funding hub"}`)
		shared.SetSession(ctx, auth.NewSession(userID.String()))

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("should map an unknown creator to 400", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		userID := uuid.New()
		projectService.On("CreateProject", userID, mock.AnythingOfType("*models.Project")).
			Return(&pgconn.PgError{Code: "23503"})

		ctx, _ := newJSONContext(t, http.MethodPost, `{"name":"op-atlas","description":"retro funding hub"}`)
		shared.SetSession(ctx, auth.NewSession(userID.String()))

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should reject a body without a name", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, _ := newJSONContext(t, http.MethodPost, `{"description":"retro funding hub"}`)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
		projectService.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	})

	t.Run("should reject an unauthenticated request", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, _ := newJSONContext(t, http.MethodPost, `{"name":"op-atlas","description":"retro funding hub"}`)
		shared.SetSession(ctx, auth.NoSession)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 401, httpErr.Code)
	})
}

func TestProjectAddMembers(t *testing.T) {
	newContext := func(t *testing.T, body string) (shared.Context, models.Project) {
		ctx, _ := newJSONContext(t, http.MethodPost, body)
		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()
		shared.SetProject(ctx, project)
		return ctx, project
	}

	t.Run("should map a duplicate membership to 409", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		userID := uuid.New()
		ctx, project := newContext(t, `{"userIds":["`+userID.String()+`"]}`)

		memberRepository.On("AddMembers", shared.DB(nil), project.ID, []uuid.UUID{userID}, models.TeamRole("")).
			Return(&pgconn.PgError{Code: "23505"})

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.AddMembers(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("should map an unknown user to 400", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		userID := uuid.New()
		ctx, project := newContext(t, `{"userIds":["`+userID.String()+`"]}`)

		memberRepository.On("AddMembers", shared.DB(nil), project.ID, []uuid.UUID{userID}, models.TeamRole("")).
			Return(&pgconn.PgError{Code: "23503"})

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.AddMembers(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should reject an empty member list", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, _ := newContext(t, `{"userIds":[]}`)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.AddMembers(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
		memberRepository.AssertNotCalled(t, "AddMembers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProjectChangeRole(t *testing.T) {
	t.Run("should map a missing membership to 404", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"role":"admin"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()
		shared.SetProject(ctx, project)

		userID := uuid.New()
		ctx.SetParamNames("userID")
		ctx.SetParamValues(userID.String())

		memberRepository.On("UpdateRole", shared.DB(nil), project.ID, userID, models.TeamRoleAdmin).
			Return(gorm.ErrRecordNotFound)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.ChangeRole(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, _ := newJSONContext(t, http.MethodPut, `{"role":"owner"}`)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.ChangeRole(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
		memberRepository.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProjectPatch(t *testing.T) {
	t.Run("should map an update of a deleted project to 404", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, _ := newJSONContext(t, http.MethodPatch, `{"name":"renamed"}`)
		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()
		shared.SetProject(ctx, project)

		projectRepository.On("Update", shared.DB(nil), mock.AnythingOfType("*models.Project")).
			Return(gorm.ErrRecordNotFound)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Patch(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("should not write when the patch is empty", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, rec := newJSONContext(t, http.MethodPatch, `{}`)
		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()
		shared.SetProject(ctx, project)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Patch(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		projectRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProjectDelete(t *testing.T) {
	t.Run("should delegate to the service", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		memberRepository := mocks.NewMemberRepository(t)
		projectService := mocks.NewProjectService(t)

		ctx, rec := newJSONContext(t, http.MethodDelete, "")
		project := models.Project{Name: "op-atlas"}
		project.ID = uuid.New()
		shared.SetProject(ctx, project)

		projectService.On("DeleteProject", project.ID).Return(nil)

		controller := controllers.NewProjectController(projectRepository, memberRepository, projectService)

		err := controller.Delete(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}
