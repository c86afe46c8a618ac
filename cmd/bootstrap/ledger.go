package bootstrap

import (
	"econlearn/internal/infra/ledger"

	"go.uber.org/fx"
)

// LedgerModule owns the process-lifetime booking ledger. It starts empty and
// is shared by every request.
var LedgerModule = fx.Module("ledger",
	fx.Provide(
		ledger.New,
	),
)
