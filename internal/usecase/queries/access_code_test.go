//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"keyless-sync/internal/lock"
	"keyless-sync/internal/pkg/clock"
	"keyless-sync/internal/usecase/queries"
	"keyless-sync/tests/common/builder"
	queriesmock "keyless-sync/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func window(reservationID, seriesID uuid.UUID, begin time.Time) lock.ValidityWindow {
	return lock.ValidityWindow{
		ReservationID: reservationID,
		SeriesID:      seriesID,
		Begin:         begin,
		End:           begin.Add(2 * time.Hour),
	}
}

func TestCurrentWindow(t *testing.T) {
	target := uuid.New()
	other := uuid.New()
	seriesID := uuid.New()

	rec := &lock.SeriesAccessCodeRecord{
		Windows: []lock.ValidityWindow{
			window(other, seriesID, builder.DefaultBegin),
			window(target, seriesID, builder.DefaultBegin.Add(7*24*time.Hour)),
		},
	}

	t.Run("selects the window owned by the reservation", func(t *testing.T) {
		w, ok := queries.CurrentWindow(rec, target)
		require.True(t, ok)
		assert.Equal(t, target, w.ReservationID)
		assert.Equal(t, builder.DefaultBegin.Add(7*24*time.Hour), w.Begin)
	})

	t.Run("unknown reservation finds nothing", func(t *testing.T) {
		_, ok := queries.CurrentWindow(rec, uuid.New())
		assert.False(t, ok)
	})

	t.Run("empty record finds nothing", func(t *testing.T) {
		_, ok := queries.CurrentWindow(&lock.SeriesAccessCodeRecord{}, target)
		assert.False(t, ok)
	})
}

func TestWindowsForSeries(t *testing.T) {
	mine := uuid.New()
	sibling := uuid.New()

	rec := &lock.SectionAccessCodeRecord{
		Windows: []lock.ValidityWindow{
			window(uuid.New(), mine, builder.DefaultBegin),
			window(uuid.New(), sibling, builder.DefaultBegin.Add(24*time.Hour)),
			window(uuid.New(), mine, builder.DefaultBegin.Add(48*time.Hour)),
		},
	}

	got := queries.WindowsForSeries(rec, mine)
	require.Len(t, got, 2, "sibling series windows are filtered out")
	for _, w := range got {
		assert.Equal(t, mine, w.SeriesID)
	}

	assert.Empty(t, queries.WindowsForSeries(rec, uuid.New()))
}

// ================================================================================
// ReservationCode granularity resolution
// ================================================================================

type AccessCodeQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	reader   *queriesmock.MockBookingReader
	fake     *lock.Fake
	queries  queries.AccessCodeQueries
}

func (s *AccessCodeQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reader = queriesmock.NewMockBookingReader(s.mockCtrl)
	s.fake = lock.NewFake(clock.NewMockClock(testNow))
	s.queries = queries.NewAccessCodeQueries(s.reader, s.fake.Clients())
}

func (s *AccessCodeQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccessCodeQueriesSuite(t *testing.T) {
	suite.Run(t, new(AccessCodeQueriesTestSuite))
}

func (s *AccessCodeQueriesTestSuite) TestStandaloneReservationCode() {
	res := builder.NewReservationBuilder().Build()

	generatedAt := testNow.Add(-time.Hour)
	s.fake.SeedReservation(res.ID, lock.AccessCodeRecord{
		AccessCode:         "1234",
		KeypadURL:          "https://keypad.example/abc",
		ValidMinutesBefore: 15,
		ValidMinutesAfter:  10,
		GeneratedAt:        &generatedAt,
		IsActive:           true,
		Begin:              res.Begin,
		End:                res.End,
	})

	s.reader.EXPECT().ReservationByID(gomock.Any(), res.ID).Return(res, nil)

	view, err := s.queries.ReservationCode(context.Background(), res.ID)
	s.Require().NoError(err)

	s.Equal("1234", view.AccessCode)
	s.Equal(res.Begin, view.Begin)
	s.Equal(res.Begin.Add(-15*time.Minute), view.EffectiveBegin)
	s.Equal(res.End.Add(10*time.Minute), view.EffectiveEnd)
	s.True(view.IsActive)
}

func (s *AccessCodeQueriesTestSuite) TestSeriesReservationCodePicksOwnWindow() {
	seriesID := uuid.New()
	res := builder.NewReservationBuilder().WithSeries(seriesID).Build()
	siblingBegin := builder.DefaultBegin.Add(7 * 24 * time.Hour)

	generatedAt := testNow.Add(-time.Hour)
	s.fake.SeedSeries(seriesID, lock.SeriesAccessCodeRecord{
		AccessCode:         "5678",
		ValidMinutesBefore: 5,
		ValidMinutesAfter:  5,
		GeneratedAt:        &generatedAt,
		IsActive:           true,
		Windows: []lock.ValidityWindow{
			window(res.ID, seriesID, res.Begin),
			window(uuid.New(), seriesID, siblingBegin),
		},
	})

	s.reader.EXPECT().ReservationByID(gomock.Any(), res.ID).Return(res, nil)

	view, err := s.queries.ReservationCode(context.Background(), res.ID)
	s.Require().NoError(err)

	s.Equal("5678", view.AccessCode)
	s.Equal(res.Begin, view.Begin, "the reservation's own window wins over siblings")
	s.Equal(res.Begin.Add(-5*time.Minute), view.EffectiveBegin)
}

func (s *AccessCodeQueriesTestSuite) TestSeasonalReservationCodeFiltersSiblingSeries() {
	seriesID := uuid.New()
	sectionID := uuid.New()
	res := builder.NewReservationBuilder().WithSection(seriesID, sectionID).Build()

	generatedAt := testNow.Add(-time.Hour)
	s.fake.SeedSection(sectionID, lock.SectionAccessCodeRecord{
		AccessCode:  "9012",
		GeneratedAt: &generatedAt,
		IsActive:    true,
		Windows: []lock.ValidityWindow{
			window(res.ID, seriesID, res.Begin),
			window(uuid.New(), uuid.New(), res.Begin.Add(24*time.Hour)),
		},
	})

	s.reader.EXPECT().ReservationByID(gomock.Any(), res.ID).Return(res, nil)

	view, err := s.queries.ReservationCode(context.Background(), res.ID)
	s.Require().NoError(err)

	s.Equal("9012", view.AccessCode)
	s.Equal(res.Begin, view.Begin)
}

func (s *AccessCodeQueriesTestSuite) TestReservationCodeWindowMissing() {
	seriesID := uuid.New()
	res := builder.NewReservationBuilder().WithSeries(seriesID).Build()

	generatedAt := testNow.Add(-time.Hour)
	s.fake.SeedSeries(seriesID, lock.SeriesAccessCodeRecord{
		AccessCode:  "5678",
		GeneratedAt: &generatedAt,
		IsActive:    true,
		Windows: []lock.ValidityWindow{
			window(uuid.New(), seriesID, builder.DefaultBegin),
		},
	})

	s.reader.EXPECT().ReservationByID(gomock.Any(), res.ID).Return(res, nil)

	_, err := s.queries.ReservationCode(context.Background(), res.ID)
	s.Require().ErrorIs(err, queries.ErrWindowNotFound)
}

func (s *AccessCodeQueriesTestSuite) TestReservationCodeRemoteNotFound() {
	res := builder.NewReservationBuilder().Build()
	s.reader.EXPECT().ReservationByID(gomock.Any(), res.ID).Return(res, nil)

	_, err := s.queries.ReservationCode(context.Background(), res.ID)
	s.Require().ErrorIs(err, queries.ErrCodeNotFound)
}

func (s *AccessCodeQueriesTestSuite) TestSeriesCode() {
	seriesID := uuid.New()
	generatedAt := testNow.Add(-time.Hour)
	s.fake.SeedSeries(seriesID, lock.SeriesAccessCodeRecord{
		AccessCode:         "5678",
		ValidMinutesBefore: 5,
		ValidMinutesAfter:  5,
		GeneratedAt:        &generatedAt,
		IsActive:           true,
		Windows: []lock.ValidityWindow{
			window(uuid.New(), seriesID, builder.DefaultBegin),
			window(uuid.New(), seriesID, builder.DefaultBegin.Add(7*24*time.Hour)),
		},
	})

	view, err := s.queries.SeriesCode(context.Background(), seriesID)
	s.Require().NoError(err)

	s.Equal(seriesID, view.SeriesID)
	s.Equal("5678", view.AccessCode)
	s.Len(view.Windows, 2)
}

func (s *AccessCodeQueriesTestSuite) TestSeriesCodeNotFound() {
	_, err := s.queries.SeriesCode(context.Background(), uuid.New())
	s.Require().ErrorIs(err, queries.ErrCodeNotFound)
}
