package handlers

import (
	"errors"
	"net/http"

	"evently/models"
	"evently/services/booking"
	"evently/services/catalog"
	"evently/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	BookingSvc booking.BookingSessionService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// writeResult maps service errors to status codes. Validation failures and
// rejected transitions still carry the current snapshot.
func (h *BookingHandler) writeResult(c *gin.Context, okStatus int, resp *models.BookingResponse, err error) {
	var verr *booking.ValidationError
	switch {
	case err == nil:
		c.JSON(okStatus, resp)
	case errors.As(err, &verr):
		utils.WriteError(c, http.StatusUnprocessableEntity, utils.ErrorResponse{
			Message: "validation failed",
			Errors:  verr.Fields,
			Booking: resp,
		})
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrSubmissionInProgress):
		utils.WriteError(c, http.StatusConflict, utils.ErrorResponse{
			Message: "booking transition refused",
			Details: err.Error(),
			Booking: resp,
		})
	case errors.Is(err, booking.ErrSessionNotFound), errors.Is(err, booking.ErrSessionClosed), errors.Is(err, catalog.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found", err.Error())
	default:
		h.Logger.Error("booking request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking request failed", err.Error())
	}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.BookingSvc.OpenSession(c.Request.Context(), body.ServiceID)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found", err.Error())
		return
	}
	h.writeResult(c, http.StatusCreated, resp, err)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.BookingSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	h.writeResult(c, http.StatusOK, resp, err)
}

// UpdateSession handles PATCH /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.BookingSvc.UpdateDraft(c.Request.Context(), c.Param("sessionID"), patch)
	h.writeResult(c, http.StatusOK, resp, err)
}

// NextStep handles POST /api/booking/session/:sessionID/next.
func (h *BookingHandler) NextStep(c *gin.Context) {
	resp, err := h.BookingSvc.Next(c.Request.Context(), c.Param("sessionID"))
	h.writeResult(c, http.StatusOK, resp, err)
}

// PreviousStep handles POST /api/booking/session/:sessionID/previous.
func (h *BookingHandler) PreviousStep(c *gin.Context) {
	resp, err := h.BookingSvc.Previous(c.Request.Context(), c.Param("sessionID"))
	h.writeResult(c, http.StatusOK, resp, err)
}

// ConfirmBooking handles POST /api/booking/session/:sessionID/submit. It
// blocks until the submission is finalized.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	resp, err := h.BookingSvc.Submit(c.Request.Context(), c.Param("sessionID"))
	h.writeResult(c, http.StatusOK, resp, err)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.BookingSvc.CloseSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.writeResult(c, http.StatusOK, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session closed"})
}
