package commands

import (
	"context"
	"time"

	"keyless-sync/internal/domain/booking"

	"github.com/google/uuid"
)

// CodeState is the per-booking sync snapshot persisted after a successful
// remote call. Zero value means "no code exists".
type CodeState struct {
	GeneratedAt *time.Time
	IsActive    bool
}

// BookingStore loads sync-relevant booking snapshots and persists the
// resulting access-code state. Implemented by infra/repository; the write
// side never updates state optimistically ahead of the remote.
type BookingStore interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	SeriesByID(ctx context.Context, id uuid.UUID) (*booking.Series, error)
	SectionByID(ctx context.Context, id uuid.UUID) (*booking.Section, error)

	SaveReservationCodeState(ctx context.Context, id uuid.UUID, state CodeState) error
	SaveSeriesCodeState(ctx context.Context, id uuid.UUID, state CodeState) error
	SaveSectionCodeState(ctx context.Context, id uuid.UUID, state CodeState) error
}
