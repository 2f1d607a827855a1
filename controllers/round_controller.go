package controllers

import (
	"errors"

	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type RoundController struct {
	roundRepository shared.FundingRoundRepository
}

func NewRoundController(roundRepository shared.FundingRoundRepository) *RoundController {
	return &RoundController{
		roundRepository: roundRepository,
	}
}

// @Summary List funding rounds
// @Success 200 {array} dtos.RoundDTO
// @Router /rounds [get]
func (c *RoundController) List(ctx shared.Context) error {
	rounds, err := c.roundRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list rounds").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(rounds, transformer.RoundModelToDTO))
}

// @Summary Read a funding round
// @Param roundID path string true "Round id"
// @Success 200 {object} dtos.RoundDTO
// @Router /rounds/{roundID} [get]
func (c *RoundController) Read(ctx shared.Context) error {
	roundID := shared.GetParam(ctx, "roundID")
	if roundID == "" {
		return echo.NewHTTPError(400, "round id is required")
	}

	round, err := c.roundRepository.Read(roundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "round not found")
		}
		return echo.NewHTTPError(500, "could not read round").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RoundModelToDTO(round))
}
