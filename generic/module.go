package generic

import "go.uber.org/fx"

// Module provides the *Config read from the environment and a *Factory.
var Module = fx.Module("generic-error",
	fx.Provide(
		LoadConfig,
		NewFactory,
	),
)
