package bootstrap

import (
	"keyless-sync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	LockModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
