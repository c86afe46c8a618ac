package bootstrap

import (
	"econlearn/internal/infra/catalog"

	"go.uber.org/fx"
)

// CatalogModule builds the static catalog once at startup. Seed validation
// errors abort the application instead of degrading into per-request "no
// match" behavior.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		catalog.NewSeededStore,
	),
)
