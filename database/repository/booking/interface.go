package bookingRepo

import (
	"context"
	"errors"

	"carwash/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create assigns an id, applies defaults, validates and inserts the booking.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetAll retrieves every booking. Order is unspecified.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// GetByStatus retrieves bookings whose status equals status exactly.
	GetByStatus(ctx context.Context, status string) ([]models.Booking, error)
	// SearchByText matches query as a case-insensitive substring of carName or customerName.
	SearchByText(ctx context.Context, query string) ([]models.Booking, error)
	// Update merges patch onto the stored booking, re-validates and persists it.
	Update(ctx context.Context, id string, patch models.BookingPatch) (*models.Booking, error)
	// Delete removes a booking and returns what was removed.
	Delete(ctx context.Context, id string) (*models.Booking, error)
	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}

var (
	_ BookingRepository = (*MongoBookingRepo)(nil)
	_ BookingRepository = (*MemoryBookingRepo)(nil)
)

// prepareNew fills store-owned fields and validates a booking before insert.
func prepareNew(booking *models.Booking) error {
	booking.ID = uuid.New().String()
	if booking.Status == "" {
		booking.Status = models.StatusPending
	}
	return booking.Validate()
}
