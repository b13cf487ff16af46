package response

import (
	"time"

	"keyless-sync/internal/lock"
	"keyless-sync/internal/usecase/commands"
	"keyless-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AccessCodeResponse struct {
	ReservationID      uuid.UUID  `json:"reservationId"`
	AccessCode         string     `json:"accessCode"`
	KeypadURL          string     `json:"keypadUrl"`
	PhoneNumber        string     `json:"phoneNumber"`
	SMSNumber          string     `json:"smsNumber"`
	SMSMessage         string     `json:"smsMessage"`
	ValidMinutesBefore int        `json:"validMinutesBefore"`
	ValidMinutesAfter  int        `json:"validMinutesAfter"`
	GeneratedAt        *time.Time `json:"generatedAt,omitempty"`
	IsActive           bool       `json:"isActive"`
	Begin              time.Time  `json:"begin"`
	End                time.Time  `json:"end"`
	EffectiveBegin     time.Time  `json:"effectiveBegin"`
	EffectiveEnd       time.Time  `json:"effectiveEnd"`
}

type SeriesCodeResponse struct {
	SeriesID           uuid.UUID             `json:"seriesId"`
	AccessCode         string                `json:"accessCode"`
	KeypadURL          string                `json:"keypadUrl"`
	ValidMinutesBefore int                   `json:"validMinutesBefore"`
	ValidMinutesAfter  int                   `json:"validMinutesAfter"`
	GeneratedAt        *time.Time            `json:"generatedAt,omitempty"`
	IsActive           bool                  `json:"isActive"`
	Windows            []lock.ValidityWindow `json:"windows"`
}

type SyncResponse struct {
	CodeExists  bool       `json:"codeExists"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
	IsActive    bool       `json:"isActive"`
}

func FromAccessCodeView(rm *queries.AccessCodeView) *AccessCodeResponse {
	var resp AccessCodeResponse
	// Field names line up one-to-one, only the JSON casing differs.
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSeriesCodeView(rm *queries.SeriesCodeView) *SeriesCodeResponse {
	var resp SeriesCodeResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSyncResult(rm *commands.SyncResult) *SyncResponse {
	return &SyncResponse{
		CodeExists:  rm.CodeExists,
		GeneratedAt: rm.GeneratedAt,
		IsActive:    rm.IsActive,
	}
}
