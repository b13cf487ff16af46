//go:build unit

package builder

import (
	"time"

	"keyless-sync/internal/domain/booking"

	"github.com/google/uuid"
)

var DefaultBegin = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

// ReservationBuilder assembles reservation snapshots for sync tests. The
// default is a confirmed, access-code, normal reservation with no code yet.
type ReservationBuilder struct {
	res booking.Reservation
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		res: booking.Reservation{
			ID:        uuid.New(),
			Begin:     DefaultBegin,
			End:       DefaultBegin.Add(2 * time.Hour),
			State:     booking.StateConfirmed,
			EntryType: booking.EntryAccessCode,
			Kind:      booking.KindNormal,
		},
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.res.ID = id
	return b
}

func (b *ReservationBuilder) WithState(s booking.State) *ReservationBuilder {
	b.res.State = s
	return b
}

func (b *ReservationBuilder) WithEntryType(t booking.EntryType) *ReservationBuilder {
	b.res.EntryType = t
	return b
}

func (b *ReservationBuilder) WithKind(k booking.Kind) *ReservationBuilder {
	b.res.Kind = k
	return b
}

func (b *ReservationBuilder) WithWindow(begin, end time.Time) *ReservationBuilder {
	b.res.Begin = begin
	b.res.End = end
	return b
}

func (b *ReservationBuilder) WithSeries(seriesID uuid.UUID) *ReservationBuilder {
	b.res.SeriesID = &seriesID
	return b
}

func (b *ReservationBuilder) WithSection(seriesID, sectionID uuid.UUID) *ReservationBuilder {
	b.res.SeriesID = &seriesID
	b.res.SectionID = &sectionID
	return b
}

func (b *ReservationBuilder) WithGeneratedCode(at time.Time, active bool) *ReservationBuilder {
	b.res.CodeGeneratedAt = &at
	b.res.CodeIsActive = active
	return b
}

func (b *ReservationBuilder) Build() *booking.Reservation {
	res := b.res
	return &res
}

// SeriesBuilder assembles a recurring series with its member reservations.
type SeriesBuilder struct {
	series booking.Series
}

func NewSeriesBuilder() *SeriesBuilder {
	return &SeriesBuilder{
		series: booking.Series{ID: uuid.New()},
	}
}

func (b *SeriesBuilder) WithID(id uuid.UUID) *SeriesBuilder {
	b.series.ID = id
	return b
}

func (b *SeriesBuilder) WithGeneratedCode(at time.Time, active bool) *SeriesBuilder {
	b.series.CodeGeneratedAt = &at
	b.series.CodeIsActive = active
	return b
}

func (b *SeriesBuilder) AddReservation(rb *ReservationBuilder) *SeriesBuilder {
	res := rb.WithSeries(b.series.ID).Build()
	b.series.Reservations = append(b.series.Reservations, *res)
	return b
}

func (b *SeriesBuilder) Build() *booking.Series {
	series := b.series
	return &series
}

// SectionBuilder assembles a seasonal booking spanning several series.
type SectionBuilder struct {
	section booking.Section
}

func NewSectionBuilder() *SectionBuilder {
	return &SectionBuilder{
		section: booking.Section{ID: uuid.New()},
	}
}

func (b *SectionBuilder) WithID(id uuid.UUID) *SectionBuilder {
	b.section.ID = id
	return b
}

func (b *SectionBuilder) WithGeneratedCode(at time.Time, active bool) *SectionBuilder {
	b.section.CodeGeneratedAt = &at
	b.section.CodeIsActive = active
	return b
}

func (b *SectionBuilder) AddSeries(sb *SeriesBuilder) *SectionBuilder {
	series := sb.Build()
	sectionID := b.section.ID
	series.SectionID = &sectionID
	for i := range series.Reservations {
		series.Reservations[i].SectionID = &sectionID
	}
	b.section.Series = append(b.section.Series, *series)
	return b
}

func (b *SectionBuilder) Build() *booking.Section {
	section := b.section
	return &section
}
