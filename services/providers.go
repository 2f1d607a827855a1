package services

import (
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"go.uber.org/fx"
)

// Module provides all service constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
	fx.Provide(fx.Annotate(NewApplicationService, fx.As(new(shared.ApplicationService)))),
	fx.Provide(fx.Annotate(NewDashboardService, fx.As(new(shared.DashboardService)))),
)
