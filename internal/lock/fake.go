package lock

import (
	"context"
	"fmt"
	"sync"

	"keyless-sync/internal/pkg/clock"

	"github.com/google/uuid"
)

// Fake is an in-memory lock service implementing the same entity-client
// interfaces as the real thing. It backs local development and tests, and
// honors the remote's 404/409 semantics so reconciliation fallbacks can be
// exercised without a network.
type Fake struct {
	mu           sync.Mutex
	clk          clock.Clock
	nextCode     int
	reservations map[uuid.UUID]*AccessCodeRecord
	series       map[uuid.UUID]*SeriesAccessCodeRecord
	sections     map[uuid.UUID]*SectionAccessCodeRecord
	calls        []string
}

func NewFake(clk clock.Clock) *Fake {
	return &Fake{
		clk:          clk,
		reservations: map[uuid.UUID]*AccessCodeRecord{},
		series:       map[uuid.UUID]*SeriesAccessCodeRecord{},
		sections:     map[uuid.UUID]*SectionAccessCodeRecord{},
	}
}

// Clients returns the fake behind the production interfaces.
func (f *Fake) Clients() Clients {
	return Clients{
		Reservations: &fakeReservations{f},
		Series:       &fakeSeries{f},
		Sections:     &fakeSections{f},
	}
}

// Calls lists the operations performed, in order, as "resource.op id".
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *Fake) record(op string, id uuid.UUID) {
	f.calls = append(f.calls, fmt.Sprintf("%s %s", op, id))
}

func (f *Fake) newCode() string {
	f.nextCode++
	return fmt.Sprintf("%04d", f.nextCode)
}

// SeedReservation plants a remote record before the local side knows of it,
// which is how create-conflict fallbacks are simulated.
func (f *Fake) SeedReservation(id uuid.UUID, rec AccessCodeRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations[id] = &rec
}

func (f *Fake) SeedSeries(id uuid.UUID, rec SeriesAccessCodeRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.series[id] = &rec
}

func (f *Fake) SeedSection(id uuid.UUID, rec SectionAccessCodeRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sections[id] = &rec
}

func anyActive(windows []WindowSpec) bool {
	for _, w := range windows {
		if w.IsActive {
			return true
		}
	}
	return false
}

func toValidityWindows(specs []WindowSpec) []ValidityWindow {
	windows := make([]ValidityWindow, 0, len(specs))
	for _, s := range specs {
		windows = append(windows, ValidityWindow{
			ReservationID: s.ReservationID,
			SeriesID:      s.SeriesID,
			Begin:         s.Begin,
			End:           s.End,
		})
	}
	return windows
}

// --- reservation resource ---

type fakeReservations struct{ f *Fake }

func (c *fakeReservations) Get(_ context.Context, id uuid.UUID) (*AccessCodeRecord, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("reservation.get", id)
	rec, ok := c.f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (c *fakeReservations) Create(_ context.Context, res NewReservation) (*AccessCodeRecord, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("reservation.create", res.ReservationID)
	if _, ok := c.f.reservations[res.ReservationID]; ok {
		return nil, ErrConflict
	}
	now := c.f.clk.Now()
	rec := &AccessCodeRecord{
		AccessCode:  c.f.newCode(),
		KeypadURL:   "https://keypad.example/" + res.ReservationID.String(),
		GeneratedAt: &now,
		IsActive:    res.IsActive,
		Begin:       res.Begin,
		End:         res.End,
	}
	c.f.reservations[res.ReservationID] = rec
	out := *rec
	return &out, nil
}

func (c *fakeReservations) Reschedule(_ context.Context, id uuid.UUID, req RescheduleReservation) (*ModifyResult, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("reservation.reschedule", id)
	rec, ok := c.f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec.Begin = req.Begin
	rec.End = req.End
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	return &ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (c *fakeReservations) Delete(_ context.Context, id uuid.UUID) error {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("reservation.delete", id)
	if _, ok := c.f.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(c.f.reservations, id)
	return nil
}

func (c *fakeReservations) ChangeCode(_ context.Context, id uuid.UUID) (*ModifyResult, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("reservation.change-code", id)
	rec, ok := c.f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := c.f.clk.Now()
	rec.AccessCode = c.f.newCode()
	rec.GeneratedAt = &now
	return &ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (c *fakeReservations) Activate(_ context.Context, id uuid.UUID) error {
	return c.setActive(id, true)
}

func (c *fakeReservations) Deactivate(_ context.Context, id uuid.UUID) error {
	return c.setActive(id, false)
}

func (c *fakeReservations) setActive(id uuid.UUID, active bool) error {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	if active {
		c.f.record("reservation.activate", id)
	} else {
		c.f.record("reservation.deactivate", id)
	}
	rec, ok := c.f.reservations[id]
	if !ok {
		return ErrNotFound
	}
	rec.IsActive = active
	return nil
}

// --- reservation series resource ---

type fakeSeries struct{ f *Fake }

func (c *fakeSeries) Get(_ context.Context, id uuid.UUID) (*SeriesAccessCodeRecord, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("series.get", id)
	rec, ok := c.f.series[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (c *fakeSeries) Create(_ context.Context, id uuid.UUID, windows []WindowSpec) (*SeriesAccessCodeRecord, error) {
	if len(windows) == 0 {
		return nil, ErrNoReservations
	}
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("series.create", id)
	if _, ok := c.f.series[id]; ok {
		return nil, ErrConflict
	}
	now := c.f.clk.Now()
	rec := &SeriesAccessCodeRecord{
		AccessCode:  c.f.newCode(),
		GeneratedAt: &now,
		IsActive:    anyActive(windows),
		Windows:     toValidityWindows(windows),
	}
	c.f.series[id] = rec
	out := *rec
	return &out, nil
}

func (c *fakeSeries) Reschedule(_ context.Context, id uuid.UUID, windows []WindowSpec) (*ModifyResult, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("series.reschedule", id)
	rec, ok := c.f.series[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec.Windows = toValidityWindows(windows)
	rec.IsActive = anyActive(windows)
	return &ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (c *fakeSeries) Delete(_ context.Context, id uuid.UUID) error {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("series.delete", id)
	if _, ok := c.f.series[id]; !ok {
		return ErrNotFound
	}
	delete(c.f.series, id)
	return nil
}

func (c *fakeSeries) ChangeCode(_ context.Context, id uuid.UUID) (*ModifyResult, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("series.change-code", id)
	rec, ok := c.f.series[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := c.f.clk.Now()
	rec.AccessCode = c.f.newCode()
	rec.GeneratedAt = &now
	return &ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

// --- seasonal booking resource ---

type fakeSections struct{ f *Fake }

func (c *fakeSections) Get(_ context.Context, id uuid.UUID) (*SectionAccessCodeRecord, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("section.get", id)
	rec, ok := c.f.sections[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (c *fakeSections) Create(_ context.Context, id uuid.UUID, windows []WindowSpec) (*SectionAccessCodeRecord, error) {
	if len(windows) == 0 {
		return nil, ErrNoReservations
	}
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("section.create", id)
	if _, ok := c.f.sections[id]; ok {
		return nil, ErrConflict
	}
	now := c.f.clk.Now()
	rec := &SectionAccessCodeRecord{
		AccessCode:  c.f.newCode(),
		GeneratedAt: &now,
		IsActive:    anyActive(windows),
		Windows:     toValidityWindows(windows),
	}
	c.f.sections[id] = rec
	out := *rec
	return &out, nil
}

func (c *fakeSections) Reschedule(_ context.Context, id uuid.UUID, windows []WindowSpec) (*ModifyResult, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("section.reschedule", id)
	rec, ok := c.f.sections[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec.Windows = toValidityWindows(windows)
	rec.IsActive = anyActive(windows)
	return &ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}

func (c *fakeSections) Delete(_ context.Context, id uuid.UUID) error {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("section.delete", id)
	if _, ok := c.f.sections[id]; !ok {
		return ErrNotFound
	}
	delete(c.f.sections, id)
	return nil
}

func (c *fakeSections) ChangeCode(_ context.Context, id uuid.UUID) (*ModifyResult, error) {
	c.f.mu.Lock()
	defer c.f.mu.Unlock()
	c.f.record("section.change-code", id)
	rec, ok := c.f.sections[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := c.f.clk.Now()
	rec.AccessCode = c.f.newCode()
	rec.GeneratedAt = &now
	return &ModifyResult{GeneratedAt: rec.GeneratedAt, IsActive: rec.IsActive}, nil
}
