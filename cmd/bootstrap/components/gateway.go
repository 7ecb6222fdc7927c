package components

import (
	"shareit/internal/gateway"
	gwapi "shareit/internal/gateway/api"
	"shareit/internal/gateway/client"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayClientModule = fx.Module("gateway/client",
	fx.Provide(
		func(cfg config.Config) *client.Client {
			return client.New(cfg.Gateway)
		},
		client.NewUserClient,
		client.NewItemClient,
		client.NewBookingClient,
		client.NewRequestClient,
	),
)

var GatewayHandlerModule = fx.Module("gateway/handler",
	fx.Provide(
		clock.NewRealClock,
		gwapi.NewUserHandler,
		gwapi.NewItemHandler,
		gwapi.NewBookingHandler,
		gwapi.NewItemRequestHandler,
	),
	fx.Invoke(gateway.NewRouter),
)
