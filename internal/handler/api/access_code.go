package api

import (
	"context"
	"errors"
	"net/http"

	resdto "keyless-sync/internal/handler/dto/response"
	"keyless-sync/internal/lock"
	"keyless-sync/internal/usecase/commands"
	"keyless-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccessCodeHandler struct {
	accessCodeCommands commands.AccessCodeCommands
	accessCodeQueries  queries.AccessCodeQueries
}

func NewAccessCodeHandler(accessCodeCommands commands.AccessCodeCommands, accessCodeQueries queries.AccessCodeQueries) *AccessCodeHandler {
	return &AccessCodeHandler{
		accessCodeCommands: accessCodeCommands,
		accessCodeQueries:  accessCodeQueries,
	}
}

// @Summary Get access code for a reservation
// @Description Resolve the current entry code and validity window for one reservation
// @Tags access-codes
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.AccessCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /access-codes/reservations/{id} [get]
func (h *AccessCodeHandler) GetReservationCode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.accessCodeQueries.ReservationCode(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, queries.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No access code exists for this reservation"})
		case errors.Is(err, queries.ErrWindowNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No validity window for this reservation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccessCodeView(view))
}

// @Summary Get access code for a reservation series
// @Description One shared code plus every validity window of the series
// @Tags access-codes
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} resdto.SeriesCodeResponse
// @Failure 404 {object} map[string]string
// @Router /access-codes/series/{id} [get]
func (h *AccessCodeHandler) GetSeriesCode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.accessCodeQueries.SeriesCode(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No access code exists for this series"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeriesCodeView(view))
}

// @Summary Sync a reservation's access code
// @Description Reconcile the lock service against the reservation's current local state
// @Tags sync
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.SyncResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /sync/reservations/{id} [post]
func (h *AccessCodeHandler) SyncReservation(c *gin.Context) {
	h.sync(c, h.accessCodeCommands.SyncReservation)
}

// @Summary Sync a reservation series' access code
// @Tags sync
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} resdto.SyncResponse
// @Router /sync/series/{id} [post]
func (h *AccessCodeHandler) SyncSeries(c *gin.Context) {
	h.sync(c, h.accessCodeCommands.SyncSeries)
}

// @Summary Sync a seasonal booking's access code
// @Tags sync
// @Produce json
// @Param id path string true "Seasonal booking ID"
// @Success 200 {object} resdto.SyncResponse
// @Router /sync/seasonal-bookings/{id} [post]
func (h *AccessCodeHandler) SyncSection(c *gin.Context) {
	h.sync(c, h.accessCodeCommands.SyncSection)
}

// @Summary Rotate a reservation's access code
// @Description Force the lock service to issue a fresh code
// @Tags access-codes
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.SyncResponse
// @Router /access-codes/reservations/{id}/rotate [post]
func (h *AccessCodeHandler) RotateReservation(c *gin.Context) {
	h.sync(c, h.accessCodeCommands.RotateReservation)
}

// @Summary Rotate a series' access code
// @Tags access-codes
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} resdto.SyncResponse
// @Router /access-codes/series/{id}/rotate [post]
func (h *AccessCodeHandler) RotateSeries(c *gin.Context) {
	h.sync(c, h.accessCodeCommands.RotateSeries)
}

// @Summary Rotate a seasonal booking's access code
// @Tags access-codes
// @Produce json
// @Param id path string true "Seasonal booking ID"
// @Success 200 {object} resdto.SyncResponse
// @Router /access-codes/seasonal-bookings/{id}/rotate [post]
func (h *AccessCodeHandler) RotateSection(c *gin.Context) {
	h.sync(c, h.accessCodeCommands.RotateSection)
}

func (h *AccessCodeHandler) sync(c *gin.Context, op func(context.Context, uuid.UUID) (*commands.SyncResult, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, lock.ErrNoReservations):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No reservations eligible for an access code"})
		case errors.Is(err, lock.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No access code exists remotely"})
		case errors.Is(err, commands.ErrSyncFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Lock service sync failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return uuid.Nil, false
	}
	return id, true
}
