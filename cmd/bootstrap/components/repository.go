package components

import (
	"keyless-sync/internal/infra/repository"
	"keyless-sync/internal/usecase/commands"
	"keyless-sync/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.BookingReader)),
		),
	),
)
