package client

import "go.uber.org/fx"

var Module = fx.Module("push_client",
	fx.Provide(
		NewPushProvider,
		NewProviderConfig,
		NewFCMConfig,
		NewRelayConfig,
		NewBreakerRegistry,
		NewBreakerConfig,
	),
)
