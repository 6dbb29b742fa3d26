package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	ListPendingBookingsHandler gin.HandlerFunc
	SearchBookingsHandler      gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	UpdateBookingHandler       gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Operational endpoints
	HealthCheckHandler gin.HandlerFunc
	MetricsHandler     gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from its handlers. metrics may be nil.
func NewHandlerBundle(bookings *BookingHandler, health *HealthHandler, metrics gin.HandlerFunc) *HandlerBundle {
	hb := &HandlerBundle{
		CreateBookingHandler:       bookings.CreateBookingHandler,
		ListBookingsHandler:        bookings.ListBookingsHandler,
		ListPendingBookingsHandler: bookings.ListPendingBookingsHandler,
		SearchBookingsHandler:      bookings.SearchBookingsHandler,
		GetBookingHandler:          bookings.GetBookingHandler,
		UpdateBookingHandler:       bookings.UpdateBookingHandler,
		DeleteBookingHandler:       bookings.DeleteBookingHandler,
		MetricsHandler:             metrics,
	}
	if health != nil {
		hb.HealthCheckHandler = health.HealthCheckHandler
	}
	return hb
}
