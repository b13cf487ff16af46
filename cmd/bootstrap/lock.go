package bootstrap

import (
	"log/slog"

	"keyless-sync/internal/lock"
	"keyless-sync/internal/pkg/clock"
	"keyless-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLockClients,
	),
)

// NewLockClients fails the whole app start on missing lock credentials, so a
// misconfigured deployment never comes up half-working.
func NewLockClients(cfg config.Config, logger *slog.Logger, clk clock.Clock) (lock.Clients, error) {
	if cfg.Lock.UseFake {
		logger.Warn("using in-memory fake lock service, codes are not real")
		return lock.NewFake(clk).Clients(), nil
	}
	return lock.NewClients(cfg.Lock, logger)
}
