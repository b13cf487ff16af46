package queries

import (
	"context"
	"errors"
	"time"

	"keyless-sync/internal/domain/booking"
	"keyless-sync/internal/infra"
	"keyless-sync/internal/lock"
	"keyless-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrCodeNotFound    = errs.New("access code not found")
	ErrWindowNotFound  = errs.New("validity window not found")
)

// AccessCodeView answers "what code opens the door for this reservation".
// Effective instants already include the before/after buffers.
type AccessCodeView struct {
	ReservationID      uuid.UUID  `json:"reservation_id"`
	AccessCode         string     `json:"access_code"`
	KeypadURL          string     `json:"keypad_url"`
	PhoneNumber        string     `json:"phone_number"`
	SMSNumber          string     `json:"sms_number"`
	SMSMessage         string     `json:"sms_message"`
	ValidMinutesBefore int        `json:"valid_minutes_before"`
	ValidMinutesAfter  int        `json:"valid_minutes_after"`
	GeneratedAt        *time.Time `json:"generated_at,omitempty"`
	IsActive           bool       `json:"is_active"`
	Begin              time.Time  `json:"begin"`
	End                time.Time  `json:"end"`
	EffectiveBegin     time.Time  `json:"effective_begin"`
	EffectiveEnd       time.Time  `json:"effective_end"`
}

// SeriesCodeView is the aggregate read model: one code, many windows.
type SeriesCodeView struct {
	SeriesID           uuid.UUID             `json:"series_id"`
	AccessCode         string                `json:"access_code"`
	KeypadURL          string                `json:"keypad_url"`
	ValidMinutesBefore int                   `json:"valid_minutes_before"`
	ValidMinutesAfter  int                   `json:"valid_minutes_after"`
	GeneratedAt        *time.Time            `json:"generated_at,omitempty"`
	IsActive           bool                  `json:"is_active"`
	Windows            []lock.ValidityWindow `json:"windows"`
}

// CurrentWindow selects the validity window belonging to the given
// reservation. Callers always know which reservation they mean, so selection
// is by id rather than by proximity to now.
func CurrentWindow(rec *lock.SeriesAccessCodeRecord, reservationID uuid.UUID) (lock.ValidityWindow, bool) {
	for _, w := range rec.Windows {
		if w.ReservationID == reservationID {
			return w, true
		}
	}
	return lock.ValidityWindow{}, false
}

// WindowsForSeries filters a seasonal aggregate down to one series, dropping
// windows owned by sibling series of the same section. The remote has no
// native series boundary inside a seasonal booking.
func WindowsForSeries(rec *lock.SectionAccessCodeRecord, seriesID uuid.UUID) []lock.ValidityWindow {
	var out []lock.ValidityWindow
	for _, w := range rec.Windows {
		if w.SeriesID == seriesID {
			out = append(out, w)
		}
	}
	return out
}

// BookingReader is the read-side slice of the booking store.
type BookingReader interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
}

type AccessCodeQueries interface {
	ReservationCode(ctx context.Context, reservationID uuid.UUID) (*AccessCodeView, error)
	SeriesCode(ctx context.Context, seriesID uuid.UUID) (*SeriesCodeView, error)
}

type accessCodeQueriesImpl struct {
	reader  BookingReader
	clients lock.Clients
}

func NewAccessCodeQueries(reader BookingReader, clients lock.Clients) AccessCodeQueries {
	return &accessCodeQueriesImpl{reader: reader, clients: clients}
}

// ReservationCode resolves the reservation's granularity first, then asks the
// matching remote resource for the shared record and narrows it down to the
// one window the caller means.
func (q *accessCodeQueriesImpl) ReservationCode(ctx context.Context, reservationID uuid.UUID) (*AccessCodeView, error) {
	res, err := q.reader.ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	switch {
	case res.SectionID != nil:
		rec, err := q.clients.Sections.Get(ctx, *res.SectionID)
		if err != nil {
			return nil, markRemoteErr(err)
		}
		if res.SeriesID == nil {
			return nil, errs.Mark(errs.New("seasonal reservation without series id"), ErrWindowNotFound)
		}
		windows := WindowsForSeries(rec, *res.SeriesID)
		return seriesWindowView(reservationID, sectionAsSeries(rec, windows))

	case res.SeriesID != nil:
		rec, err := q.clients.Series.Get(ctx, *res.SeriesID)
		if err != nil {
			return nil, markRemoteErr(err)
		}
		return seriesWindowView(reservationID, rec)

	default:
		rec, err := q.clients.Reservations.Get(ctx, reservationID)
		if err != nil {
			return nil, markRemoteErr(err)
		}
		return &AccessCodeView{
			ReservationID:      reservationID,
			AccessCode:         rec.AccessCode,
			KeypadURL:          rec.KeypadURL,
			PhoneNumber:        rec.PhoneNumber,
			SMSNumber:          rec.SMSNumber,
			SMSMessage:         rec.SMSMessage,
			ValidMinutesBefore: rec.ValidMinutesBefore,
			ValidMinutesAfter:  rec.ValidMinutesAfter,
			GeneratedAt:        rec.GeneratedAt,
			IsActive:           rec.IsActive,
			Begin:              rec.Begin,
			End:                rec.End,
			EffectiveBegin:     rec.Begin.Add(-time.Duration(rec.ValidMinutesBefore) * time.Minute),
			EffectiveEnd:       rec.End.Add(time.Duration(rec.ValidMinutesAfter) * time.Minute),
		}, nil
	}
}

func (q *accessCodeQueriesImpl) SeriesCode(ctx context.Context, seriesID uuid.UUID) (*SeriesCodeView, error) {
	rec, err := q.clients.Series.Get(ctx, seriesID)
	if err != nil {
		return nil, markRemoteErr(err)
	}
	return &SeriesCodeView{
		SeriesID:           seriesID,
		AccessCode:         rec.AccessCode,
		KeypadURL:          rec.KeypadURL,
		ValidMinutesBefore: rec.ValidMinutesBefore,
		ValidMinutesAfter:  rec.ValidMinutesAfter,
		GeneratedAt:        rec.GeneratedAt,
		IsActive:           rec.IsActive,
		Windows:            rec.Windows,
	}, nil
}

func markRemoteErr(err error) error {
	if errors.Is(err, lock.ErrNotFound) {
		return errs.Mark(err, ErrCodeNotFound)
	}
	return err
}

// sectionAsSeries reshapes a filtered section record so the window lookup is
// shared between the series and seasonal paths.
func sectionAsSeries(rec *lock.SectionAccessCodeRecord, windows []lock.ValidityWindow) *lock.SeriesAccessCodeRecord {
	return &lock.SeriesAccessCodeRecord{
		AccessCode:         rec.AccessCode,
		KeypadURL:          rec.KeypadURL,
		PhoneNumber:        rec.PhoneNumber,
		SMSNumber:          rec.SMSNumber,
		SMSMessage:         rec.SMSMessage,
		ValidMinutesBefore: rec.ValidMinutesBefore,
		ValidMinutesAfter:  rec.ValidMinutesAfter,
		GeneratedAt:        rec.GeneratedAt,
		IsActive:           rec.IsActive,
		Windows:            windows,
	}
}

func seriesWindowView(reservationID uuid.UUID, rec *lock.SeriesAccessCodeRecord) (*AccessCodeView, error) {
	w, ok := CurrentWindow(rec, reservationID)
	if !ok {
		return nil, errs.Mark(
			errs.Newf("no validity window for reservation %s", reservationID),
			ErrWindowNotFound,
		)
	}
	return &AccessCodeView{
		ReservationID:      reservationID,
		AccessCode:         rec.AccessCode,
		KeypadURL:          rec.KeypadURL,
		PhoneNumber:        rec.PhoneNumber,
		SMSNumber:          rec.SMSNumber,
		SMSMessage:         rec.SMSMessage,
		ValidMinutesBefore: rec.ValidMinutesBefore,
		ValidMinutesAfter:  rec.ValidMinutesAfter,
		GeneratedAt:        rec.GeneratedAt,
		IsActive:           rec.IsActive,
		Begin:              w.Begin,
		End:                w.End,
		EffectiveBegin:     w.Begin.Add(-time.Duration(rec.ValidMinutesBefore) * time.Minute),
		EffectiveEnd:       w.End.Add(time.Duration(rec.ValidMinutesAfter) * time.Minute),
	}, nil
}
