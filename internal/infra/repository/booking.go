package repository

import (
	"context"
	"errors"

	"keyless-sync/internal/domain/booking"
	"keyless-sync/internal/infra"
	"keyless-sync/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository reads sync snapshots out of the booking backend's tables
// and writes back the per-booking access-code state. Schema belongs to the
// surrounding application; only the columns touched here matter.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

var _ commands.BookingStore = (*BookingRepository)(nil)

const reservationColumns = `
	id, series_id, seasonal_booking_id, begin_at, end_at,
	state, entry_type, kind,
	access_code_generated_at, access_code_is_active
`

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var r booking.Reservation
	var state, entryType, kind string
	err := row.Scan(
		&r.ID, &r.SeriesID, &r.SectionID, &r.Begin, &r.End,
		&state, &entryType, &kind,
		&r.CodeGeneratedAt, &r.CodeIsActive,
	)
	if err != nil {
		return nil, err
	}
	r.State = booking.State(state)
	r.EntryType = booking.EntryType(entryType)
	r.Kind = booking.Kind(kind)
	return &r, nil
}

func (s *BookingRepository) ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

func (s *BookingRepository) reservationsBySeries(ctx context.Context, seriesID uuid.UUID) ([]booking.Reservation, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE series_id = $1 ORDER BY begin_at`, seriesID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []booking.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *BookingRepository) SeriesByID(ctx context.Context, id uuid.UUID) (*booking.Series, error) {
	var series booking.Series
	err := s.db.QueryRow(ctx,
		`SELECT id, seasonal_booking_id, access_code_generated_at, access_code_is_active
		 FROM reservation_series WHERE id = $1`, id).
		Scan(&series.ID, &series.SectionID, &series.CodeGeneratedAt, &series.CodeIsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation series not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation series by ID", err)
	}

	series.Reservations, err = s.reservationsBySeries(ctx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load series reservations", err)
	}
	return &series, nil
}

func (s *BookingRepository) SectionByID(ctx context.Context, id uuid.UUID) (*booking.Section, error) {
	var section booking.Section
	err := s.db.QueryRow(ctx,
		`SELECT id, access_code_generated_at, access_code_is_active
		 FROM seasonal_bookings WHERE id = $1`, id).
		Scan(&section.ID, &section.CodeGeneratedAt, &section.CodeIsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("seasonal booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seasonal booking by ID", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, seasonal_booking_id, access_code_generated_at, access_code_is_active
		 FROM reservation_series WHERE seasonal_booking_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load section series", err)
	}
	defer rows.Close()

	for rows.Next() {
		var series booking.Series
		if err := rows.Scan(&series.ID, &series.SectionID, &series.CodeGeneratedAt, &series.CodeIsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan section series", err)
		}
		section.Series = append(section.Series, series)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate section series", err)
	}

	for i := range section.Series {
		section.Series[i].Reservations, err = s.reservationsBySeries(ctx, section.Series[i].ID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load section reservations", err)
		}
	}
	return &section, nil
}

func (s *BookingRepository) SaveReservationCodeState(ctx context.Context, id uuid.UUID, state commands.CodeState) error {
	return s.saveCodeState(ctx, "reservations", id, state)
}

func (s *BookingRepository) SaveSeriesCodeState(ctx context.Context, id uuid.UUID, state commands.CodeState) error {
	return s.saveCodeState(ctx, "reservation_series", id, state)
}

func (s *BookingRepository) SaveSectionCodeState(ctx context.Context, id uuid.UUID, state commands.CodeState) error {
	return s.saveCodeState(ctx, "seasonal_bookings", id, state)
}

func (s *BookingRepository) saveCodeState(ctx context.Context, table string, id uuid.UUID, state commands.CodeState) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE `+table+` SET access_code_generated_at = $1, access_code_is_active = $2 WHERE id = $3`,
		state.GeneratedAt, state.IsActive, id)
	if err != nil {
		return infra.WrapRepoErr("failed to save access code state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking row vanished during sync", nil, infra.KindNotFound)
	}
	return nil
}
