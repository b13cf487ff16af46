package lock

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SeriesAPI manages one shared code across a recurring reservation series.
// The remote exposes no activate/deactivate for aggregates; per-window active
// flags travel inside the create/reschedule payload instead.
type SeriesAPI interface {
	Get(ctx context.Context, id uuid.UUID) (*SeriesAccessCodeRecord, error)
	Create(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*SeriesAccessCodeRecord, error)
	Reschedule(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*ModifyResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ChangeCode(ctx context.Context, id uuid.UUID) (*ModifyResult, error)
}

// WindowSpec is one constituent reservation's slot in an aggregate payload.
type WindowSpec struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	SeriesID      uuid.UUID `json:"reservation_series_id"`
	Begin         time.Time `json:"begin"`
	End           time.Time `json:"end"`
	IsActive      bool      `json:"access_code_is_active"`
}

type newSeriesPayload struct {
	SeriesID     uuid.UUID    `json:"reservation_series_id"`
	CodeValidity []WindowSpec `json:"code_validity"`
}

type rescheduleSeriesPayload struct {
	CodeValidity []WindowSpec `json:"code_validity"`
}

type SeriesClient struct {
	t *transport
}

func NewSeriesClient(t *transport) *SeriesClient {
	return &SeriesClient{t: t}
}

func (c *SeriesClient) Get(ctx context.Context, id uuid.UUID) (*SeriesAccessCodeRecord, error) {
	resp, err := c.t.request(ctx, http.MethodGet, "/reservation-series/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseSeriesRecord(resp.Body)
}

// Create refuses an empty window list locally: an aggregate code with no
// eligible reservations should never come into existence remotely.
func (c *SeriesClient) Create(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*SeriesAccessCodeRecord, error) {
	if len(windows) == 0 {
		return nil, ErrNoReservations
	}
	payload := newSeriesPayload{SeriesID: id, CodeValidity: windows}
	resp, err := c.t.request(ctx, http.MethodPost, "/reservation-series", payload)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseSeriesRecord(resp.Body)
}

// Reschedule accepts an empty window list so a stale remote series can be
// cleared, unlike Create.
func (c *SeriesClient) Reschedule(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*ModifyResult, error) {
	if windows == nil {
		windows = []WindowSpec{}
	}
	payload := rescheduleSeriesPayload{CodeValidity: windows}
	resp, err := c.t.request(ctx, http.MethodPut, "/reservation-series/"+id.String(), payload)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseModifyResult(resp.Body)
}

func (c *SeriesClient) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := c.t.request(ctx, http.MethodDelete, "/reservation-series/"+id.String(), nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusNoContent {
		return statusError(resp.Status, resp.Body)
	}
	return nil
}

func (c *SeriesClient) ChangeCode(ctx context.Context, id uuid.UUID) (*ModifyResult, error) {
	resp, err := c.t.request(ctx, http.MethodPut, "/change-access-code/reservation-series/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseModifyResult(resp.Body)
}
