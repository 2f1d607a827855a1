package controllers

import (
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	dashboardService shared.DashboardService
}

func NewDashboardController(dashboardService shared.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// @Summary My rewards dashboard
// @Security CookieAuth
// @Success 200 {object} dtos.DashboardDTO
// @Router /dashboard [get]
func (c *DashboardController) Read(ctx shared.Context) error {
	userID, err := shared.GetSessionUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(401, "could not get user id").WithInternal(err)
	}

	dashboard, err := c.dashboardService.BuildDashboard(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not build dashboard").WithInternal(err)
	}

	return ctx.JSON(200, dashboard)
}
