package bootstrap

import (
	"shareit/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// ServerModule assembles the business tier.
var ServerModule = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// GatewayModule assembles the validating edge tier. No database here.
var GatewayModule = fx.Options(
	ConfigModule,
	components.GatewayClientModule,
	components.GatewayHandlerModule,
)
