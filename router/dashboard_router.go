package router

import (
	"github.com/Pranay-Bhilare/op-atlas/controllers"
	"github.com/Pranay-Bhilare/op-atlas/middlewares"
	"github.com/labstack/echo/v4"
)

type DashboardRouter struct {
	*echo.Group
}

func NewDashboardRouter(
	apiV1Router APIV1Router,
	dashboardController *controllers.DashboardController,
) DashboardRouter {
	dashboardRouter := apiV1Router.Group.Group("/dashboard", middlewares.SessionRequiredMiddleware())
	dashboardRouter.GET("/", dashboardController.Read)

	return DashboardRouter{Group: dashboardRouter}
}
