package controllers

import (
	"fmt"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
)

type FundingController struct {
	fundingRepository shared.FundingRepository
}

func NewFundingController(fundingRepository shared.FundingRepository) *FundingController {
	return &FundingController{
		fundingRepository: fundingRepository,
	}
}

// @Summary List funding history of a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.FundingDTO
// @Router /projects/{projectID}/funding [get]
func (c *FundingController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	rows, err := c.fundingRepository.GetByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list funding").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(rows, transformer.FundingModelToDTO))
}

// @Summary Replace the funding history of a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.FundingReplaceRequest true "Request body"
// @Success 200 {array} dtos.FundingDTO
// @Router /projects/{projectID}/funding [put]
func (c *FundingController) Replace(ctx shared.Context) error {
	var req dtos.FundingReplaceRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	rows := utils.Map(req.Funding, transformer.FundingEntryRequestToModel)

	replaced, err := c.fundingRepository.ReplaceForProject(project.ID, rows)
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "duplicate funding entry in new set").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not replace funding").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(replaced, transformer.FundingModelToDTO))
}
