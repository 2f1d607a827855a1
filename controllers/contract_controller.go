package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ContractController struct {
	contractRepository shared.ContractRepository
}

func NewContractController(contractRepository shared.ContractRepository) *ContractController {
	return &ContractController{
		contractRepository: contractRepository,
	}
}

// @Summary Add a contract to a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.ContractCreateRequest true "Request body"
// @Success 200 {object} dtos.ContractDTO
// @Router /projects/{projectID}/contracts [post]
func (c *ContractController) Create(ctx shared.Context) error {
	var req dtos.ContractCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	contract := transformer.ContractCreateRequestToModel(req)
	contract.ProjectID = project.ID

	if err := c.contractRepository.Create(nil, &contract); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "contract already claimed for this chain").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create contract").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ContractModelToDTO(contract))
}

// @Summary List contracts of a deployer
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param deployer query string true "Deployer address"
// @Success 200 {array} dtos.ContractDTO
// @Router /projects/{projectID}/contracts [get]
func (c *ContractController) ListByDeployer(ctx shared.Context) error {
	deployer := ctx.QueryParam("deployer")
	if deployer == "" {
		return echo.NewHTTPError(400, "deployer is required")
	}

	project := shared.GetProject(ctx)
	contracts, err := c.contractRepository.FindByDeployer(project.ID, strings.ToLower(deployer))
	if err != nil {
		return echo.NewHTTPError(500, "could not list contracts").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(contracts, transformer.ContractModelToDTO))
}

// @Summary Remove a contract
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param address path string true "Contract address"
// @Param chainID path int true "Chain id"
// @Success 200
// @Router /projects/{projectID}/contracts/{chainID}/{address} [delete]
func (c *ContractController) Delete(ctx shared.Context) error {
	address := shared.GetParam(ctx, "address")
	chainID, err := shared.GetChainID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid chain id").WithInternal(err)
	}

	project := shared.GetProject(ctx)
	if err := c.contractRepository.Remove(nil, project.ID, strings.ToLower(address), chainID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "contract not found")
		}
		return echo.NewHTTPError(500, "could not remove contract").WithInternal(err)
	}

	return ctx.NoContent(200)
}
