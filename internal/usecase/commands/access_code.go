package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"keyless-sync/internal/domain/booking"
	"keyless-sync/internal/infra"
	"keyless-sync/internal/lock"
	"keyless-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrSyncFailed      = errs.New("access code sync failed")
	ErrStoreFailed     = errs.New("booking store operation failed")
)

// SyncResult reports the reconciled state: whether a remote code exists and
// the persisted generated-at/active pair.
type SyncResult struct {
	CodeExists  bool
	GeneratedAt *time.Time
	IsActive    bool
}

// AccessCodeCommands reconciles local bookings against the lock service.
// Sync* is run once per booking whenever an access-relevant attribute
// changes; Rotate* forces issuance of a fresh code.
type AccessCodeCommands interface {
	SyncReservation(ctx context.Context, id uuid.UUID) (*SyncResult, error)
	SyncSeries(ctx context.Context, id uuid.UUID) (*SyncResult, error)
	SyncSection(ctx context.Context, id uuid.UUID) (*SyncResult, error)

	RotateReservation(ctx context.Context, id uuid.UUID) (*SyncResult, error)
	RotateSeries(ctx context.Context, id uuid.UUID) (*SyncResult, error)
	RotateSection(ctx context.Context, id uuid.UUID) (*SyncResult, error)
}

type accessCodeCommandsImpl struct {
	store   BookingStore
	clients lock.Clients
	logger  *slog.Logger
}

func NewAccessCodeCommands(store BookingStore, clients lock.Clients, logger *slog.Logger) AccessCodeCommands {
	return &accessCodeCommandsImpl{
		store:   store,
		clients: clients,
		logger:  logger,
	}
}

// syncTarget abstracts one booking granularity behind the operations the
// decision tree needs. The tree below is written once against it.
type syncTarget interface {
	id() uuid.UUID
	requiresCode() bool
	desiredActive() bool
	hasLocalCode() bool

	create(ctx context.Context) (*lock.ModifyResult, error)
	reschedule(ctx context.Context) (*lock.ModifyResult, error)
	remove(ctx context.Context) error
	supportsActivation() bool
	activate(ctx context.Context) error
	deactivate(ctx context.Context) error
	persist(ctx context.Context, state CodeState) error
}

// reconcile drives the remote toward the locally desired state:
//  1. no code wanted: delete, swallowing "already absent";
//  2. no code known locally: create, falling back to reschedule on conflict;
//  3. code known locally: reschedule, falling back to create on not-found;
//  4. follow-up activate/deactivate when the resulting flag disagrees with
//     the desired one — its failure is logged, never fatal;
//  5. persist only state produced by successful remote calls.
func (u *accessCodeCommandsImpl) reconcile(ctx context.Context, t syncTarget) (*SyncResult, error) {
	if !t.requiresCode() {
		if err := t.remove(ctx); err != nil && !errors.Is(err, lock.ErrNotFound) {
			return nil, errs.Mark(err, ErrSyncFailed)
		}
		if err := t.persist(ctx, CodeState{}); err != nil {
			return nil, err
		}
		return &SyncResult{}, nil
	}

	var (
		res *lock.ModifyResult
		err error
	)
	if !t.hasLocalCode() {
		res, err = t.create(ctx)
		if errors.Is(err, lock.ErrConflict) {
			// Remote already holds this id despite local ignorance.
			res, err = t.reschedule(ctx)
		}
	} else {
		res, err = t.reschedule(ctx)
		if errors.Is(err, lock.ErrNotFound) {
			// Local thinks a code exists, remote disagrees.
			res, err = t.create(ctx)
		}
	}
	if err != nil {
		return nil, errs.Mark(err, ErrSyncFailed)
	}

	finalActive := res.IsActive
	if t.supportsActivation() && res.IsActive != t.desiredActive() {
		var followUpErr error
		if t.desiredActive() {
			followUpErr = t.activate(ctx)
		} else {
			followUpErr = t.deactivate(ctx)
		}
		if followUpErr != nil {
			// The code exists with a possibly wrong active flag until the
			// next sync pass. Availability wins over strict correctness.
			u.logger.Warn("access code activation follow-up failed",
				"booking_id", t.id(),
				"desired_active", t.desiredActive(),
				"error", followUpErr,
			)
		} else {
			finalActive = t.desiredActive()
		}
	}

	state := CodeState{GeneratedAt: res.GeneratedAt, IsActive: finalActive}
	if err := t.persist(ctx, state); err != nil {
		return nil, err
	}
	return &SyncResult{CodeExists: true, GeneratedAt: state.GeneratedAt, IsActive: state.IsActive}, nil
}

func (u *accessCodeCommandsImpl) SyncReservation(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	res, err := u.store.ReservationByID(ctx, id)
	if err != nil {
		return nil, markStoreErr(err)
	}
	// A reservation governed by an aggregate is reconciled at aggregate
	// granularity; its window travels inside the shared code.
	if res.SectionID != nil {
		return u.SyncSection(ctx, *res.SectionID)
	}
	if res.SeriesID != nil {
		return u.SyncSeries(ctx, *res.SeriesID)
	}
	return u.reconcile(ctx, &reservationTarget{res: res, api: u.clients.Reservations, store: u.store})
}

func (u *accessCodeCommandsImpl) SyncSeries(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	series, err := u.store.SeriesByID(ctx, id)
	if err != nil {
		return nil, markStoreErr(err)
	}
	return u.reconcile(ctx, &seriesTarget{series: series, api: u.clients.Series, store: u.store})
}

func (u *accessCodeCommandsImpl) SyncSection(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	section, err := u.store.SectionByID(ctx, id)
	if err != nil {
		return nil, markStoreErr(err)
	}
	return u.reconcile(ctx, &sectionTarget{section: section, api: u.clients.Sections, store: u.store})
}

func (u *accessCodeCommandsImpl) RotateReservation(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	if _, err := u.store.ReservationByID(ctx, id); err != nil {
		return nil, markStoreErr(err)
	}
	res, err := u.clients.Reservations.ChangeCode(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSyncFailed)
	}
	state := CodeState{GeneratedAt: res.GeneratedAt, IsActive: res.IsActive}
	if err := u.store.SaveReservationCodeState(ctx, id, state); err != nil {
		return nil, markStoreErr(err)
	}
	return &SyncResult{CodeExists: true, GeneratedAt: state.GeneratedAt, IsActive: state.IsActive}, nil
}

func (u *accessCodeCommandsImpl) RotateSeries(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	if _, err := u.store.SeriesByID(ctx, id); err != nil {
		return nil, markStoreErr(err)
	}
	res, err := u.clients.Series.ChangeCode(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSyncFailed)
	}
	state := CodeState{GeneratedAt: res.GeneratedAt, IsActive: res.IsActive}
	if err := u.store.SaveSeriesCodeState(ctx, id, state); err != nil {
		return nil, markStoreErr(err)
	}
	return &SyncResult{CodeExists: true, GeneratedAt: state.GeneratedAt, IsActive: state.IsActive}, nil
}

func (u *accessCodeCommandsImpl) RotateSection(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	if _, err := u.store.SectionByID(ctx, id); err != nil {
		return nil, markStoreErr(err)
	}
	res, err := u.clients.Sections.ChangeCode(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSyncFailed)
	}
	state := CodeState{GeneratedAt: res.GeneratedAt, IsActive: res.IsActive}
	if err := u.store.SaveSectionCodeState(ctx, id, state); err != nil {
		return nil, markStoreErr(err)
	}
	return &SyncResult{CodeExists: true, GeneratedAt: state.GeneratedAt, IsActive: state.IsActive}, nil
}

func markStoreErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrBookingNotFound)
	}
	return errs.Mark(err, ErrStoreFailed)
}

// --- granularity variants of the tagged union ---

type reservationTarget struct {
	res   *booking.Reservation
	api   lock.ReservationAPI
	store BookingStore
}

func (t *reservationTarget) id() uuid.UUID       { return t.res.ID }
func (t *reservationTarget) requiresCode() bool  { return t.res.RequiresCode() }
func (t *reservationTarget) desiredActive() bool { return t.res.DesiredActive() }
func (t *reservationTarget) hasLocalCode() bool  { return t.res.HasLocalCode() }

func (t *reservationTarget) create(ctx context.Context) (*lock.ModifyResult, error) {
	rec, err := t.api.Create(ctx, lock.NewReservation{
		ReservationID: t.res.ID,
		Begin:         t.res.Begin,
		End:           t.res.End,
		IsActive:      t.res.DesiredActive(),
	})
	if err != nil {
		return nil, err
	}
	return &lock.ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (t *reservationTarget) reschedule(ctx context.Context) (*lock.ModifyResult, error) {
	return t.api.Reschedule(ctx, t.res.ID, lock.RescheduleReservation{
		Begin: t.res.Begin,
		End:   t.res.End,
	})
}

func (t *reservationTarget) remove(ctx context.Context) error {
	return t.api.Delete(ctx, t.res.ID)
}

func (t *reservationTarget) supportsActivation() bool { return true }

func (t *reservationTarget) activate(ctx context.Context) error {
	return t.api.Activate(ctx, t.res.ID)
}

func (t *reservationTarget) deactivate(ctx context.Context) error {
	return t.api.Deactivate(ctx, t.res.ID)
}

func (t *reservationTarget) persist(ctx context.Context, state CodeState) error {
	if err := t.store.SaveReservationCodeState(ctx, t.res.ID, state); err != nil {
		return markStoreErr(err)
	}
	return nil
}

func windowSpecs(windows []booking.Window) []lock.WindowSpec {
	specs := make([]lock.WindowSpec, 0, len(windows))
	for _, w := range windows {
		specs = append(specs, lock.WindowSpec{
			ReservationID: w.ReservationID,
			SeriesID:      w.SeriesID,
			Begin:         w.Begin,
			End:           w.End,
			IsActive:      w.DesiredActive,
		})
	}
	return specs
}

func anyWindowActive(windows []booking.Window) bool {
	for _, w := range windows {
		if w.DesiredActive {
			return true
		}
	}
	return false
}

type seriesTarget struct {
	series *booking.Series
	api    lock.SeriesAPI
	store  BookingStore
}

func (t *seriesTarget) id() uuid.UUID       { return t.series.ID }
func (t *seriesTarget) requiresCode() bool  { return t.series.RequiresCode() }
func (t *seriesTarget) desiredActive() bool { return anyWindowActive(t.series.EligibleWindows()) }
func (t *seriesTarget) hasLocalCode() bool  { return t.series.HasLocalCode() }

func (t *seriesTarget) create(ctx context.Context) (*lock.ModifyResult, error) {
	rec, err := t.api.Create(ctx, t.series.ID, windowSpecs(t.series.EligibleWindows()))
	if err != nil {
		return nil, err
	}
	return &lock.ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (t *seriesTarget) reschedule(ctx context.Context) (*lock.ModifyResult, error) {
	return t.api.Reschedule(ctx, t.series.ID, windowSpecs(t.series.EligibleWindows()))
}

func (t *seriesTarget) remove(ctx context.Context) error {
	return t.api.Delete(ctx, t.series.ID)
}

// Aggregates carry per-window active flags in the payload; the remote has no
// activate/deactivate endpoints for them.
func (t *seriesTarget) supportsActivation() bool { return false }
func (t *seriesTarget) activate(_ context.Context) error { return nil }
func (t *seriesTarget) deactivate(_ context.Context) error { return nil }

func (t *seriesTarget) persist(ctx context.Context, state CodeState) error {
	if err := t.store.SaveSeriesCodeState(ctx, t.series.ID, state); err != nil {
		return markStoreErr(err)
	}
	return nil
}

type sectionTarget struct {
	section *booking.Section
	api     lock.SeasonalAPI
	store   BookingStore
}

func (t *sectionTarget) id() uuid.UUID       { return t.section.ID }
func (t *sectionTarget) requiresCode() bool  { return t.section.RequiresCode() }
func (t *sectionTarget) desiredActive() bool { return anyWindowActive(t.section.EligibleWindows()) }
func (t *sectionTarget) hasLocalCode() bool  { return t.section.HasLocalCode() }

func (t *sectionTarget) create(ctx context.Context) (*lock.ModifyResult, error) {
	rec, err := t.api.Create(ctx, t.section.ID, windowSpecs(t.section.EligibleWindows()))
	if err != nil {
		return nil, err
	}
	return &lock.ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (t *sectionTarget) reschedule(ctx context.Context) (*lock.ModifyResult, error) {
	return t.api.Reschedule(ctx, t.section.ID, windowSpecs(t.section.EligibleWindows()))
}

func (t *sectionTarget) remove(ctx context.Context) error {
	return t.api.Delete(ctx, t.section.ID)
}

func (t *sectionTarget) supportsActivation() bool { return false }
func (t *sectionTarget) activate(_ context.Context) error { return nil }
func (t *sectionTarget) deactivate(_ context.Context) error { return nil }

func (t *sectionTarget) persist(ctx context.Context, state CodeState) error {
	if err := t.store.SaveSectionCodeState(ctx, t.section.ID, state); err != nil {
		return markStoreErr(err)
	}
	return nil
}
