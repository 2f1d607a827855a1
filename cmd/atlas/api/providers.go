package api

import (
	"os"

	"go.uber.org/fx"

	"github.com/Pranay-Bhilare/op-atlas/auth"
	"github.com/Pranay-Bhilare/op-atlas/shared"
)

// AuthModule provides authentication-related dependencies
var AuthModule = fx.Options(
	fx.Provide(func() shared.AdminClient {
		ory := auth.GetOryAPIClient(os.Getenv("ORY_KRATOS_PUBLIC"))
		return shared.NewAdminClient(ory)
	}),
)
