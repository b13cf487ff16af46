//go:build unit

package lock

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reservationBody = `{
	"access_code": "1234",
	"access_code_keypad_url": "https://keypad.example/abc",
	"access_code_phone_number": "+358401234567",
	"access_code_sms_number": "+358407654321",
	"access_code_sms_message": "Your code is 1234",
	"access_code_valid_minutes_before": 15,
	"access_code_valid_minutes_after": 10,
	"access_code_generated_at": "2026-06-01T09:00:00Z",
	"access_code_is_active": true,
	"begin": "2026-06-01T10:00:00Z",
	"end": "2026-06-01T12:00:00Z"
}`

func TestParseAccessCodeRecord(t *testing.T) {
	t.Run("full record decodes", func(t *testing.T) {
		rec, err := parseAccessCodeRecord([]byte(reservationBody))
		require.NoError(t, err)

		assert.Equal(t, "1234", rec.AccessCode)
		assert.Equal(t, "https://keypad.example/abc", rec.KeypadURL)
		assert.Equal(t, "+358401234567", rec.PhoneNumber)
		assert.Equal(t, "+358407654321", rec.SMSNumber)
		assert.Equal(t, "Your code is 1234", rec.SMSMessage)
		assert.Equal(t, 15, rec.ValidMinutesBefore)
		assert.Equal(t, 10, rec.ValidMinutesAfter)
		require.NotNil(t, rec.GeneratedAt)
		assert.Equal(t, time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), *rec.GeneratedAt)
		assert.True(t, rec.IsActive)
		assert.Equal(t, time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), rec.Begin)
		assert.Equal(t, time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), rec.End)
	})

	t.Run("ungenerated record has nil timestamp", func(t *testing.T) {
		body := `{
			"access_code_valid_minutes_before": 0,
			"access_code_valid_minutes_after": 0,
			"access_code_is_active": false,
			"begin": "2026-06-01T10:00:00Z",
			"end": "2026-06-01T12:00:00Z"
		}`
		rec, err := parseAccessCodeRecord([]byte(body))
		require.NoError(t, err)
		assert.Nil(t, rec.GeneratedAt)
		assert.False(t, rec.IsActive)
		assert.Empty(t, rec.AccessCode)
	})

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name: "active without generated timestamp is rejected",
			body: `{
				"access_code_valid_minutes_before": 0,
				"access_code_valid_minutes_after": 0,
				"access_code_is_active": true,
				"begin": "2026-06-01T10:00:00Z",
				"end": "2026-06-01T12:00:00Z"
			}`,
			field: "access_code_is_active",
		},
		{
			name: "missing is_active key",
			body: `{
				"access_code_valid_minutes_before": 0,
				"access_code_valid_minutes_after": 0,
				"begin": "2026-06-01T10:00:00Z",
				"end": "2026-06-01T12:00:00Z"
			}`,
			field: "access_code_is_active",
		},
		{
			name: "missing minute buffer",
			body: `{
				"access_code_valid_minutes_after": 0,
				"access_code_is_active": false,
				"begin": "2026-06-01T10:00:00Z",
				"end": "2026-06-01T12:00:00Z"
			}`,
			field: "access_code_valid_minutes_before",
		},
		{
			name: "negative minute buffer",
			body: `{
				"access_code_valid_minutes_before": -5,
				"access_code_valid_minutes_after": 0,
				"access_code_is_active": false,
				"begin": "2026-06-01T10:00:00Z",
				"end": "2026-06-01T12:00:00Z"
			}`,
			field: "access_code_valid_minutes_before",
		},
		{
			name: "missing begin",
			body: `{
				"access_code_valid_minutes_before": 0,
				"access_code_valid_minutes_after": 0,
				"access_code_is_active": false,
				"end": "2026-06-01T12:00:00Z"
			}`,
			field: "begin",
		},
		{
			name: "garbage timestamp",
			body: `{
				"access_code_valid_minutes_before": 0,
				"access_code_valid_minutes_after": 0,
				"access_code_is_active": false,
				"begin": "yesterday",
				"end": "2026-06-01T12:00:00Z"
			}`,
			field: "begin",
		},
		{
			name:  "not json at all",
			body:  `<html>`,
			field: "body",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAccessCodeRecord([]byte(tc.body))
			require.ErrorIs(t, err, ErrMalformedResponse)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestParseSeriesRecord(t *testing.T) {
	resA := uuid.New()
	resB := uuid.New()
	seriesID := uuid.New()

	// Windows arrive unordered; parsing sorts them by begin.
	body := `{
		"access_code": "5678",
		"access_code_valid_minutes_before": 5,
		"access_code_valid_minutes_after": 5,
		"access_code_generated_at": "2026-06-01T09:00:00Z",
		"access_code_is_active": true,
		"code_validity": [
			{
				"reservation_id": "` + resB.String() + `",
				"reservation_series_id": "` + seriesID.String() + `",
				"begin": "2026-06-08T10:00:00Z",
				"end": "2026-06-08T12:00:00Z"
			},
			{
				"reservation_id": "` + resA.String() + `",
				"reservation_series_id": "` + seriesID.String() + `",
				"begin": "2026-06-01T10:00:00Z",
				"end": "2026-06-01T12:00:00Z"
			}
		]
	}`

	rec, err := parseSeriesRecord([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "5678", rec.AccessCode)
	require.Len(t, rec.Windows, 2)
	assert.Equal(t, resA, rec.Windows[0].ReservationID)
	assert.Equal(t, resB, rec.Windows[1].ReservationID)
	assert.True(t, rec.Windows[0].Begin.Before(rec.Windows[1].Begin))

	t.Run("missing code_validity key", func(t *testing.T) {
		body := `{
			"access_code_valid_minutes_before": 0,
			"access_code_valid_minutes_after": 0,
			"access_code_is_active": false
		}`
		_, err := parseSeriesRecord([]byte(body))
		require.ErrorIs(t, err, ErrMalformedResponse)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "code_validity", pe.Field)
	})

	t.Run("empty code_validity is a valid cleared series", func(t *testing.T) {
		body := `{
			"access_code_valid_minutes_before": 0,
			"access_code_valid_minutes_after": 0,
			"access_code_is_active": false,
			"code_validity": []
		}`
		rec, err := parseSeriesRecord([]byte(body))
		require.NoError(t, err)
		assert.Empty(t, rec.Windows)
	})

	t.Run("invalid window UUID names the nested field", func(t *testing.T) {
		body := `{
			"access_code_valid_minutes_before": 0,
			"access_code_valid_minutes_after": 0,
			"access_code_is_active": false,
			"code_validity": [
				{
					"reservation_id": "not-a-uuid",
					"reservation_series_id": "` + seriesID.String() + `",
					"begin": "2026-06-01T10:00:00Z",
					"end": "2026-06-01T12:00:00Z"
				}
			]
		}`
		_, err := parseSeriesRecord([]byte(body))
		require.ErrorIs(t, err, ErrMalformedResponse)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "code_validity.reservation_id", pe.Field)
	})
}

func TestParseModifyResult(t *testing.T) {
	t.Run("generated and active", func(t *testing.T) {
		res, err := parseModifyResult([]byte(`{
			"access_code_generated_at": "2026-06-01T09:00:00Z",
			"access_code_is_active": true
		}`))
		require.NoError(t, err)
		require.NotNil(t, res.GeneratedAt)
		assert.True(t, res.IsActive)
	})

	t.Run("cleared result", func(t *testing.T) {
		res, err := parseModifyResult([]byte(`{"access_code_is_active": false}`))
		require.NoError(t, err)
		assert.Nil(t, res.GeneratedAt)
		assert.False(t, res.IsActive)
	})

	t.Run("active without timestamp is rejected", func(t *testing.T) {
		_, err := parseModifyResult([]byte(`{"access_code_is_active": true}`))
		require.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing is_active is rejected", func(t *testing.T) {
		_, err := parseModifyResult([]byte(`{}`))
		require.ErrorIs(t, err, ErrMalformedResponse)
	})
}
