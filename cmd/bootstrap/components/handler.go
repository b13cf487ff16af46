package components

import (
	"keyless-sync/internal/handler"
	"keyless-sync/internal/handler/api"
	"keyless-sync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAccessCodeHandler,
		middleware.NewInternalAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
