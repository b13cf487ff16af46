//go:build unit

package booking_test

import (
	"testing"
	"time"

	"keyless-sync/internal/domain/booking"
	"keyless-sync/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRequiresCode(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		want   bool
	}{
		{
			name:   "confirmed access-code reservation requires a code",
			mutate: func(b *builder.ReservationBuilder) {},
			want:   true,
		},
		{
			name:   "created reservation still requires a code",
			mutate: func(b *builder.ReservationBuilder) { b.WithState(booking.StateCreated) },
			want:   true,
		},
		{
			name:   "cancelled reservation requires no code",
			mutate: func(b *builder.ReservationBuilder) { b.WithState(booking.StateCancelled) },
			want:   false,
		},
		{
			name:   "denied reservation requires no code",
			mutate: func(b *builder.ReservationBuilder) { b.WithState(booking.StateDenied) },
			want:   false,
		},
		{
			name:   "unrestricted entry requires no code",
			mutate: func(b *builder.ReservationBuilder) { b.WithEntryType(booking.EntryUnrestricted) },
			want:   false,
		},
		{
			name: "blocked kind still requires a code, just dormant",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithKind(booking.KindBlocked)
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			assert.Equal(t, tc.want, b.Build().RequiresCode())
		})
	}
}

func TestReservationDesiredActive(t *testing.T) {
	normal := builder.NewReservationBuilder().Build()
	assert.True(t, normal.DesiredActive())

	blocked := builder.NewReservationBuilder().WithKind(booking.KindBlocked).Build()
	assert.False(t, blocked.DesiredActive())
}

func TestReservationContributesWindow(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		want   bool
	}{
		{
			name:   "confirmed access-code reservation contributes",
			mutate: func(b *builder.ReservationBuilder) {},
			want:   true,
		},
		{
			name:   "created reservation does not contribute yet",
			mutate: func(b *builder.ReservationBuilder) { b.WithState(booking.StateCreated) },
			want:   false,
		},
		{
			name:   "cancelled reservation does not contribute",
			mutate: func(b *builder.ReservationBuilder) { b.WithState(booking.StateCancelled) },
			want:   false,
		},
		{
			name:   "unrestricted entry does not contribute",
			mutate: func(b *builder.ReservationBuilder) { b.WithEntryType(booking.EntryUnrestricted) },
			want:   false,
		},
		{
			name:   "confirmed blocked reservation contributes a dormant window",
			mutate: func(b *builder.ReservationBuilder) { b.WithKind(booking.KindBlocked) },
			want:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			assert.Equal(t, tc.want, b.Build().ContributesWindow())
		})
	}
}

func TestReservationHasLocalCode(t *testing.T) {
	assert.False(t, builder.NewReservationBuilder().Build().HasLocalCode())

	withCode := builder.NewReservationBuilder().
		WithGeneratedCode(builder.DefaultBegin, true).
		Build()
	assert.True(t, withCode.HasLocalCode())
}

func TestSeriesRequiresCode(t *testing.T) {
	t.Run("one live member is enough", func(t *testing.T) {
		series := builder.NewSeriesBuilder().
			AddReservation(builder.NewReservationBuilder().WithState(booking.StateCancelled)).
			AddReservation(builder.NewReservationBuilder()).
			Build()
		assert.True(t, series.RequiresCode())
	})

	t.Run("all members void means no code", func(t *testing.T) {
		series := builder.NewSeriesBuilder().
			AddReservation(builder.NewReservationBuilder().WithState(booking.StateCancelled)).
			AddReservation(builder.NewReservationBuilder().WithState(booking.StateDenied)).
			Build()
		assert.False(t, series.RequiresCode())
	})

	t.Run("empty series means no code", func(t *testing.T) {
		assert.False(t, builder.NewSeriesBuilder().Build().RequiresCode())
	})
}

func TestSeriesEligibleWindows(t *testing.T) {
	seriesID := uuid.New()
	confirmed := builder.NewReservationBuilder()
	pending := builder.NewReservationBuilder().
		WithState(booking.StateCreated).
		WithWindow(builder.DefaultBegin.Add(24*time.Hour), builder.DefaultBegin.Add(26*time.Hour))
	blocked := builder.NewReservationBuilder().
		WithKind(booking.KindBlocked).
		WithWindow(builder.DefaultBegin.Add(48*time.Hour), builder.DefaultBegin.Add(50*time.Hour))

	series := builder.NewSeriesBuilder().
		WithID(seriesID).
		AddReservation(confirmed).
		AddReservation(pending).
		AddReservation(blocked).
		Build()

	windows := series.EligibleWindows()
	require.Len(t, windows, 2, "only confirmed access-code reservations contribute")

	expected := []booking.Window{
		{
			ReservationID: series.Reservations[0].ID,
			SeriesID:      seriesID,
			Begin:         builder.DefaultBegin,
			End:           builder.DefaultBegin.Add(2 * time.Hour),
			DesiredActive: true,
		},
		{
			ReservationID: series.Reservations[2].ID,
			SeriesID:      seriesID,
			Begin:         builder.DefaultBegin.Add(48 * time.Hour),
			End:           builder.DefaultBegin.Add(50 * time.Hour),
			DesiredActive: false,
		},
	}
	if diff := cmp.Diff(expected, windows); diff != "" {
		t.Errorf("EligibleWindows mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionEligibleWindows(t *testing.T) {
	first := builder.NewSeriesBuilder().
		AddReservation(builder.NewReservationBuilder())
	second := builder.NewSeriesBuilder().
		AddReservation(builder.NewReservationBuilder().
			WithWindow(builder.DefaultBegin.Add(24*time.Hour), builder.DefaultBegin.Add(26*time.Hour)))

	section := builder.NewSectionBuilder().
		AddSeries(first).
		AddSeries(second).
		Build()

	windows := section.EligibleWindows()
	require.Len(t, windows, 2)

	// Each window keeps its owning series id, not the section id.
	assert.NotEqual(t, windows[0].SeriesID, windows[1].SeriesID)
	assert.Equal(t, section.Series[0].ID, windows[0].SeriesID)
	assert.Equal(t, section.Series[1].ID, windows[1].SeriesID)
}

func TestSectionRequiresCode(t *testing.T) {
	live := builder.NewSectionBuilder().
		AddSeries(builder.NewSeriesBuilder().
			AddReservation(builder.NewReservationBuilder().WithState(booking.StateCancelled))).
		AddSeries(builder.NewSeriesBuilder().
			AddReservation(builder.NewReservationBuilder())).
		Build()
	assert.True(t, live.RequiresCode())

	void := builder.NewSectionBuilder().
		AddSeries(builder.NewSeriesBuilder().
			AddReservation(builder.NewReservationBuilder().WithState(booking.StateCancelled))).
		Build()
	assert.False(t, void.RequiresCode())
}
