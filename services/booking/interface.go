package booking

import (
	"context"
	"encoding/json"
	"fmt"

	bookingRepo "carwash/database/repository/booking"
	"carwash/models"

	"go.uber.org/zap"
)

// Fields is a decoded-but-untyped JSON request body, one raw value per key.
type Fields map[string]json.RawMessage

// BookingService defines the booking operations exposed over HTTP.
type BookingService interface {
	CreateBooking(ctx context.Context, body Fields) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListPendingBookings(ctx context.Context) ([]models.Booking, error)
	SearchBookings(ctx context.Context, query string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, body Fields) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// NewDefaultBookingService wires the service to its store.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, logger *zap.Logger) (*DefaultBookingService, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking service initialization error: repository is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{Repo: repo, Logger: logger}, nil
}
