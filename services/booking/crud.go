package booking

import (
	"context"
	"strings"

	"carwash/metrics"
	"carwash/models"

	"go.uber.org/zap"
)

// CreateBooking decodes a create body and stores the new booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, body Fields) (*models.Booking, error) {
	patch, err := decodePatch(body, createFields)
	if err != nil {
		return nil, s.fail("create", newBookingError(CodeValidation, "invalid booking", err))
	}
	booking, err := models.NewBookingFromPatch(patch)
	if err != nil {
		return nil, s.fail("create", classify("invalid booking", err))
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, s.fail("create", classify("failed to create booking", err))
	}

	s.Logger.Info("Booking created", zap.String("id", booking.ID), zap.String("status", booking.Status))
	s.succeed("create")
	return booking, nil
}

// ListBookings returns every booking.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, s.fail("list", classify("failed to list bookings", err))
	}
	s.succeed("list")
	return nonNil(bookings), nil
}

// ListPendingBookings returns bookings whose status is exactly "pending".
func (s *DefaultBookingService) ListPendingBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, s.fail("list_pending", classify("failed to list pending bookings", err))
	}
	s.succeed("list_pending")
	return nonNil(bookings), nil
}

// SearchBookings matches query against car and customer names.
func (s *DefaultBookingService) SearchBookings(ctx context.Context, query string) ([]models.Booking, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, s.fail("search", newBookingError(CodeBadRequest, "search query is required", nil))
	}
	bookings, err := s.Repo.SearchByText(ctx, query)
	if err != nil {
		return nil, s.fail("search", classify("failed to search bookings", err))
	}
	s.succeed("search")
	return nonNil(bookings), nil
}

// GetBooking returns one booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", classify("failed to get booking", err))
	}
	s.succeed("get")
	return booking, nil
}

// UpdateBooking applies the whitelisted fields of body to booking id.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, body Fields) (*models.Booking, error) {
	patch, err := decodePatch(body, updateFields)
	if err != nil {
		return nil, s.fail("update", newBookingError(CodeValidation, "invalid booking update", err))
	}
	booking, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail("update", classify("failed to update booking", err))
	}

	s.Logger.Info("Booking updated", zap.String("id", id), zap.Strings("fields", patch.Fields()))
	s.succeed("update")
	return booking, nil
}

// DeleteBooking removes booking id and returns it.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, s.fail("delete", classify("failed to delete booking", err))
	}

	s.Logger.Info("Booking deleted", zap.String("id", id))
	s.succeed("delete")
	return booking, nil
}

func (s *DefaultBookingService) succeed(op string) {
	metrics.IncBookingOperation(op, "success")
}

func (s *DefaultBookingService) fail(op string, err *BookingError) error {
	metrics.IncBookingOperation(op, string(err.Code))
	if err.Code == CodeStoreFailure {
		s.Logger.Error("Booking store failure", zap.String("operation", op), zap.Error(err))
	}
	return err
}

func nonNil(bookings []models.Booking) []models.Booking {
	if bookings == nil {
		return []models.Booking{}
	}
	return bookings
}
