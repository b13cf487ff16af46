package lock

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ReservationAPI is the per-reservation resource of the lock service.
type ReservationAPI interface {
	Get(ctx context.Context, id uuid.UUID) (*AccessCodeRecord, error)
	Create(ctx context.Context, res NewReservation) (*AccessCodeRecord, error)
	Reschedule(ctx context.Context, id uuid.UUID, req RescheduleReservation) (*ModifyResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ChangeCode(ctx context.Context, id uuid.UUID) (*ModifyResult, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// NewReservation is the create payload for a single reservation code.
type NewReservation struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Begin         time.Time `json:"begin"`
	End           time.Time `json:"end"`
	IsActive      bool      `json:"access_code_is_active"`
}

// RescheduleReservation moves the validity window; IsActive nil leaves the
// active flag untouched on the remote side.
type RescheduleReservation struct {
	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	IsActive *bool     `json:"access_code_is_active,omitempty"`
}

type ReservationClient struct {
	t *transport
}

func NewReservationClient(t *transport) *ReservationClient {
	return &ReservationClient{t: t}
}

func (c *ReservationClient) Get(ctx context.Context, id uuid.UUID) (*AccessCodeRecord, error) {
	resp, err := c.t.request(ctx, http.MethodGet, "/reservation/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseAccessCodeRecord(resp.Body)
}

func (c *ReservationClient) Create(ctx context.Context, res NewReservation) (*AccessCodeRecord, error) {
	resp, err := c.t.request(ctx, http.MethodPost, "/reservations", res)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseAccessCodeRecord(resp.Body)
}

func (c *ReservationClient) Reschedule(ctx context.Context, id uuid.UUID, req RescheduleReservation) (*ModifyResult, error) {
	resp, err := c.t.request(ctx, http.MethodPut, "/reservation/"+id.String(), req)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseModifyResult(resp.Body)
}

func (c *ReservationClient) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := c.t.request(ctx, http.MethodDelete, "/reservation/"+id.String(), nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusNoContent {
		return statusError(resp.Status, resp.Body)
	}
	return nil
}

func (c *ReservationClient) ChangeCode(ctx context.Context, id uuid.UUID) (*ModifyResult, error) {
	resp, err := c.t.request(ctx, http.MethodPut, "/change-access-code/reservation/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseModifyResult(resp.Body)
}

func (c *ReservationClient) Activate(ctx context.Context, id uuid.UUID) error {
	return c.post(ctx, "/reservation/"+id.String()+"/activate")
}

func (c *ReservationClient) Deactivate(ctx context.Context, id uuid.UUID) error {
	return c.post(ctx, "/reservation/"+id.String()+"/deactivate")
}

func (c *ReservationClient) post(ctx context.Context, path string) error {
	resp, err := c.t.request(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusNoContent {
		return statusError(resp.Status, resp.Body)
	}
	return nil
}
