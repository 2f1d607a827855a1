package router

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewProjectRouter),
	fx.Provide(NewDashboardRouter),
)
