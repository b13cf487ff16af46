package lock

import (
	"log/slog"

	"keyless-sync/internal/pkg/config"
)

// Clients bundles the three entity clients sharing one transport.
type Clients struct {
	Reservations ReservationAPI
	Series       SeriesAPI
	Sections     SeasonalAPI
}

// NewClients validates the configuration eagerly and wires the real clients.
// Missing base URL or api key is a fatal ErrConfiguration, raised here rather
// than on first call.
func NewClients(cfg config.LockConfig, logger *slog.Logger) (Clients, error) {
	t, err := newTransport(cfg, logger)
	if err != nil {
		return Clients{}, err
	}
	return Clients{
		Reservations: NewReservationClient(t),
		Series:       NewSeriesClient(t),
		Sections:     NewSeasonalClient(t),
	}, nil
}
