package bootstrap

import (
	"econlearn/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CatalogModule,
	LedgerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
