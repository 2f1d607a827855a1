package controllers

import "go.uber.org/fx"

// Module provides all controller constructors
var Module = fx.Options(
	fx.Provide(NewProjectController),
	fx.Provide(NewRepoController),
	fx.Provide(NewContractController),
	fx.Provide(NewFundingController),
	fx.Provide(NewSnapshotController),
	fx.Provide(NewApplicationController),
	fx.Provide(NewRoundController),
	fx.Provide(NewDashboardController),
	fx.Provide(NewUserController),
)
