package handlers

import (
	"errors"
	"io"
	"net/http"

	"carwash/models"
	"carwash/services/booking"
	"carwash/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the /api/bookings endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingEnvelope is the success body of mutating endpoints.
type bookingEnvelope struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	body, err := bindFields(c)
	if err != nil {
		utils.JSONError(c, h.logger(c), http.StatusBadRequest, "Booking failed", "invalid request body: "+err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), body)
	if err != nil {
		h.respondError(c, "Booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, bookingEnvelope{Message: "Booking successful", Booking: created})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.respondError(c, "Error retrieving bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListPendingBookingsHandler handles GET /api/bookings/pending.
func (h *BookingHandler) ListPendingBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListPendingBookings(c.Request.Context())
	if err != nil {
		h.respondError(c, "Error retrieving pending bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// SearchBookingsHandler handles GET /api/bookings/search?q=.
func (h *BookingHandler) SearchBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.SearchBookings(c.Request.Context(), c.Query("q"))
	if err != nil {
		msg := "Error searching bookings"
		if booking.CodeOf(err) == booking.CodeBadRequest {
			msg = "Search query is required"
		}
		h.respondError(c, msg, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	found, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Error retrieving booking", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	body, err := bindFields(c)
	if err != nil {
		utils.JSONError(c, h.logger(c), http.StatusBadRequest, "Booking update failed", "invalid request body: "+err.Error())
		return
	}

	updated, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		h.respondError(c, "Booking update failed", err)
		return
	}
	c.JSON(http.StatusOK, bookingEnvelope{Message: "Booking updated successfully", Booking: updated})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	removed, err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Error deleting booking", err)
		return
	}
	c.JSON(http.StatusOK, bookingEnvelope{Message: "Booking deleted successfully", Booking: removed})
}

// respondError maps a service error onto its HTTP status. Not-found always
// uses the same message regardless of the operation.
func (h *BookingHandler) respondError(c *gin.Context, message string, err error) {
	detail := err.Error()
	var be *booking.BookingError
	if errors.As(err, &be) {
		detail = be.Detail()
	}

	status := http.StatusInternalServerError
	switch booking.CodeOf(err) {
	case booking.CodeValidation, booking.CodeBadRequest:
		status = http.StatusBadRequest
	case booking.CodeNotFound:
		status = http.StatusNotFound
		message = "Booking not found"
	}
	utils.JSONError(c, h.logger(c), status, message, detail)
}

// bindFields decodes the JSON object body. A missing body reads as {}.
func bindFields(c *gin.Context) (booking.Fields, error) {
	body := booking.Fields{}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return body, nil
}

func (h *BookingHandler) logger(c *gin.Context) *zap.Logger {
	return getLogger(c, h.Logger)
}
