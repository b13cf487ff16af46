package lock

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SeasonalAPI manages the shared code of a seasonal booking section. Windows
// keep their owning series id because one section may span several series.
type SeasonalAPI interface {
	Get(ctx context.Context, id uuid.UUID) (*SectionAccessCodeRecord, error)
	Create(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*SectionAccessCodeRecord, error)
	Reschedule(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*ModifyResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ChangeCode(ctx context.Context, id uuid.UUID) (*ModifyResult, error)
}

type newSeasonalPayload struct {
	SectionID    uuid.UUID    `json:"seasonal_booking_id"`
	CodeValidity []WindowSpec `json:"code_validity"`
}

type SeasonalClient struct {
	t *transport
}

func NewSeasonalClient(t *transport) *SeasonalClient {
	return &SeasonalClient{t: t}
}

func (c *SeasonalClient) Get(ctx context.Context, id uuid.UUID) (*SectionAccessCodeRecord, error) {
	resp, err := c.t.request(ctx, http.MethodGet, "/seasonal-booking/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseSectionRecord(resp.Body)
}

// Create fails fast on an empty window list, mirroring SeriesClient.Create.
func (c *SeasonalClient) Create(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*SectionAccessCodeRecord, error) {
	if len(windows) == 0 {
		return nil, ErrNoReservations
	}
	payload := newSeasonalPayload{SectionID: id, CodeValidity: windows}
	resp, err := c.t.request(ctx, http.MethodPost, "/seasonal-bookings", payload)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseSectionRecord(resp.Body)
}

func (c *SeasonalClient) Reschedule(ctx context.Context, id uuid.UUID, windows []WindowSpec) (*ModifyResult, error) {
	if windows == nil {
		windows = []WindowSpec{}
	}
	payload := rescheduleSeriesPayload{CodeValidity: windows}
	resp, err := c.t.request(ctx, http.MethodPut, "/seasonal-booking/"+id.String(), payload)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseModifyResult(resp.Body)
}

func (c *SeasonalClient) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := c.t.request(ctx, http.MethodDelete, "/seasonal-booking/"+id.String(), nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusNoContent {
		return statusError(resp.Status, resp.Body)
	}
	return nil
}

func (c *SeasonalClient) ChangeCode(ctx context.Context, id uuid.UUID) (*ModifyResult, error) {
	resp, err := c.t.request(ctx, http.MethodPut, "/change-access-code/seasonal-booking/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, statusError(resp.Status, resp.Body)
	}
	return parseModifyResult(resp.Body)
}
