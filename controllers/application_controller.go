package controllers

import (
	"errors"
	"fmt"

	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ApplicationController struct {
	applicationRepository shared.ApplicationRepository
	applicationService    shared.ApplicationService
}

func NewApplicationController(applicationRepository shared.ApplicationRepository, applicationService shared.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationRepository: applicationRepository,
		applicationService:    applicationService,
	}
}

// @Summary List applications of a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.ApplicationDTO
// @Router /projects/{projectID}/applications [get]
func (c *ApplicationController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	applications, err := c.applicationRepository.GetByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list applications").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(applications, transformer.ApplicationModelToDTO))
}

// @Summary Submit a project to a funding round
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.ApplicationCreateRequest true "Request body"
// @Success 200 {object} dtos.ApplicationDTO
// @Router /projects/{projectID}/applications [post]
func (c *ApplicationController) Create(ctx shared.Context) error {
	var req dtos.ApplicationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	application, err := c.applicationService.CreateApplication(project.ID, req.RoundID, req.AttestationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "funding round not found")
		}
		return echo.NewHTTPError(500, "could not create application").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ApplicationModelToDTO(application))
}
