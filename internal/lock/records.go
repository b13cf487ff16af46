package lock

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// AccessCodeRecord is the lock service's view of a single reservation's code.
// GeneratedAt and IsActive are set together: a record is either fully
// generated or fully ungenerated, never partially.
type AccessCodeRecord struct {
	AccessCode         string
	KeypadURL          string
	PhoneNumber        string
	SMSNumber          string
	SMSMessage         string
	ValidMinutesBefore int
	ValidMinutesAfter  int
	GeneratedAt        *time.Time
	IsActive           bool
	Begin              time.Time
	End                time.Time
}

// ValidityWindow is one reservation's slice of a shared aggregate code.
type ValidityWindow struct {
	ReservationID uuid.UUID
	SeriesID      uuid.UUID
	Begin         time.Time
	End           time.Time
}

// SeriesAccessCodeRecord carries one code shared by every reservation of a
// recurring series, with one validity window per member.
type SeriesAccessCodeRecord struct {
	AccessCode         string
	KeypadURL          string
	PhoneNumber        string
	SMSNumber          string
	SMSMessage         string
	ValidMinutesBefore int
	ValidMinutesAfter  int
	GeneratedAt        *time.Time
	IsActive           bool
	Windows            []ValidityWindow
}

// SectionAccessCodeRecord is the seasonal aggregate. Shape matches the series
// record, but windows may belong to several sibling series of the section.
type SectionAccessCodeRecord struct {
	AccessCode         string
	KeypadURL          string
	PhoneNumber        string
	SMSNumber          string
	SMSMessage         string
	ValidMinutesBefore int
	ValidMinutesAfter  int
	GeneratedAt        *time.Time
	IsActive           bool
	Windows            []ValidityWindow
}

// ModifyResult is what a reschedule or change-code call yields. Code and
// delivery channels are omitted because they do not change on reschedule.
type ModifyResult struct {
	GeneratedAt *time.Time
	IsActive    bool
}

// ---------------------------------------------------------------------------
// Wire decoding. Pointers let us tell a missing required key apart from a
// zero value; every failure names the offending field.
// ---------------------------------------------------------------------------

type codeWire struct {
	AccessCode         *string `json:"access_code"`
	KeypadURL          *string `json:"access_code_keypad_url"`
	PhoneNumber        *string `json:"access_code_phone_number"`
	SMSNumber          *string `json:"access_code_sms_number"`
	SMSMessage         *string `json:"access_code_sms_message"`
	ValidMinutesBefore *int    `json:"access_code_valid_minutes_before"`
	ValidMinutesAfter  *int    `json:"access_code_valid_minutes_after"`
	GeneratedAt        *string `json:"access_code_generated_at"`
	IsActive           *bool   `json:"access_code_is_active"`
}

type reservationWire struct {
	codeWire
	Begin *string `json:"begin"`
	End   *string `json:"end"`
}

type windowWire struct {
	ReservationID *string `json:"reservation_id"`
	SeriesID      *string `json:"reservation_series_id"`
	Begin         *string `json:"begin"`
	End           *string `json:"end"`
}

type aggregateWire struct {
	codeWire
	CodeValidity *[]windowWire `json:"code_validity"`
}

type modifyWire struct {
	GeneratedAt *string `json:"access_code_generated_at"`
	IsActive    *bool   `json:"access_code_is_active"`
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func minutes(field string, v *int) (int, error) {
	if v == nil {
		return 0, parseErr(field, "required key missing")
	}
	if *v < 0 {
		return 0, parseErr(field, "negative minute buffer")
	}
	return *v, nil
}

func requireBool(field string, v *bool) (bool, error) {
	if v == nil {
		return false, parseErr(field, "required key missing")
	}
	return *v, nil
}

func requireTime(field string, v *string) (time.Time, error) {
	if v == nil {
		return time.Time{}, parseErr(field, "required key missing")
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return time.Time{}, parseErr(field, "invalid timestamp "+*v)
	}
	return t, nil
}

func optionalTime(field string, v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, parseErr(field, "invalid timestamp "+*v)
	}
	return &t, nil
}

func requireUUID(field string, v *string) (uuid.UUID, error) {
	if v == nil {
		return uuid.Nil, parseErr(field, "required key missing")
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return uuid.Nil, parseErr(field, "invalid UUID "+*v)
	}
	return id, nil
}

func (w codeWire) decode() (codeFields, error) {
	before, err := minutes("access_code_valid_minutes_before", w.ValidMinutesBefore)
	if err != nil {
		return codeFields{}, err
	}
	after, err := minutes("access_code_valid_minutes_after", w.ValidMinutesAfter)
	if err != nil {
		return codeFields{}, err
	}
	isActive, err := requireBool("access_code_is_active", w.IsActive)
	if err != nil {
		return codeFields{}, err
	}
	generatedAt, err := optionalTime("access_code_generated_at", w.GeneratedAt)
	if err != nil {
		return codeFields{}, err
	}
	if generatedAt == nil && isActive {
		return codeFields{}, parseErr("access_code_is_active", "active code without generated timestamp")
	}
	return codeFields{
		accessCode:  str(w.AccessCode),
		keypadURL:   str(w.KeypadURL),
		phoneNumber: str(w.PhoneNumber),
		smsNumber:   str(w.SMSNumber),
		smsMessage:  str(w.SMSMessage),
		before:      before,
		after:       after,
		generatedAt: generatedAt,
		isActive:    isActive,
	}, nil
}

type codeFields struct {
	accessCode    string
	keypadURL     string
	phoneNumber   string
	smsNumber     string
	smsMessage    string
	before, after int
	generatedAt   *time.Time
	isActive      bool
}

func parseAccessCodeRecord(body []byte) (*AccessCodeRecord, error) {
	var w reservationWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, parseErr("body", err.Error())
	}
	code, err := w.codeWire.decode()
	if err != nil {
		return nil, err
	}
	begin, err := requireTime("begin", w.Begin)
	if err != nil {
		return nil, err
	}
	end, err := requireTime("end", w.End)
	if err != nil {
		return nil, err
	}
	return &AccessCodeRecord{
		AccessCode:         code.accessCode,
		KeypadURL:          code.keypadURL,
		PhoneNumber:        code.phoneNumber,
		SMSNumber:          code.smsNumber,
		SMSMessage:         code.smsMessage,
		ValidMinutesBefore: code.before,
		ValidMinutesAfter:  code.after,
		GeneratedAt:        code.generatedAt,
		IsActive:           code.isActive,
		Begin:              begin,
		End:                end,
	}, nil
}

func parseWindows(w *[]windowWire) ([]ValidityWindow, error) {
	if w == nil {
		return nil, parseErr("code_validity", "required key missing")
	}
	windows := make([]ValidityWindow, 0, len(*w))
	for _, ww := range *w {
		reservationID, err := requireUUID("code_validity.reservation_id", ww.ReservationID)
		if err != nil {
			return nil, err
		}
		seriesID, err := requireUUID("code_validity.reservation_series_id", ww.SeriesID)
		if err != nil {
			return nil, err
		}
		begin, err := requireTime("code_validity.begin", ww.Begin)
		if err != nil {
			return nil, err
		}
		end, err := requireTime("code_validity.end", ww.End)
		if err != nil {
			return nil, err
		}
		windows = append(windows, ValidityWindow{
			ReservationID: reservationID,
			SeriesID:      seriesID,
			Begin:         begin,
			End:           end,
		})
	}
	// Normalize ordering so callers can rely on begin-time order.
	sort.Slice(windows, func(i, j int) bool { return windows[i].Begin.Before(windows[j].Begin) })
	return windows, nil
}

func parseSeriesRecord(body []byte) (*SeriesAccessCodeRecord, error) {
	var w aggregateWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, parseErr("body", err.Error())
	}
	code, err := w.codeWire.decode()
	if err != nil {
		return nil, err
	}
	windows, err := parseWindows(w.CodeValidity)
	if err != nil {
		return nil, err
	}
	return &SeriesAccessCodeRecord{
		AccessCode:         code.accessCode,
		KeypadURL:          code.keypadURL,
		PhoneNumber:        code.phoneNumber,
		SMSNumber:          code.smsNumber,
		SMSMessage:         code.smsMessage,
		ValidMinutesBefore: code.before,
		ValidMinutesAfter:  code.after,
		GeneratedAt:        code.generatedAt,
		IsActive:           code.isActive,
		Windows:            windows,
	}, nil
}

func parseSectionRecord(body []byte) (*SectionAccessCodeRecord, error) {
	rec, err := parseSeriesRecord(body)
	if err != nil {
		return nil, err
	}
	return &SectionAccessCodeRecord{
		AccessCode:         rec.AccessCode,
		KeypadURL:          rec.KeypadURL,
		PhoneNumber:        rec.PhoneNumber,
		SMSNumber:          rec.SMSNumber,
		SMSMessage:         rec.SMSMessage,
		ValidMinutesBefore: rec.ValidMinutesBefore,
		ValidMinutesAfter:  rec.ValidMinutesAfter,
		GeneratedAt:        rec.GeneratedAt,
		IsActive:           rec.IsActive,
		Windows:            rec.Windows,
	}, nil
}

func parseModifyResult(body []byte) (*ModifyResult, error) {
	var w modifyWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, parseErr("body", err.Error())
	}
	isActive, err := requireBool("access_code_is_active", w.IsActive)
	if err != nil {
		return nil, err
	}
	generatedAt, err := optionalTime("access_code_generated_at", w.GeneratedAt)
	if err != nil {
		return nil, err
	}
	if generatedAt == nil && isActive {
		return nil, parseErr("access_code_is_active", "active code without generated timestamp")
	}
	return &ModifyResult{GeneratedAt: generatedAt, IsActive: isActive}, nil
}
