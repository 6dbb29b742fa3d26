package bookingRepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"carwash/models"
)

// MemoryBookingRepo is an in-process BookingRepository. Results are returned
// in insertion order.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	order    []string
}

// NewMemoryBookingRepo creates an empty in-memory repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	if err := prepareNew(booking); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("failed to create booking: duplicate id %s", booking.ID)
	}
	r.bookings[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *MemoryBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	return r.filter(func(models.Booking) bool { return true }), nil
}

func (r *MemoryBookingRepo) GetByStatus(_ context.Context, status string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Status == status }), nil
}

func (r *MemoryBookingRepo) SearchByText(_ context.Context, query string) ([]models.Booking, error) {
	q := strings.ToLower(query)
	return r.filter(func(b models.Booking) bool {
		return strings.Contains(strings.ToLower(b.CarName), q) ||
			strings.Contains(strings.ToLower(b.CustomerName), q)
	}), nil
}

func (r *MemoryBookingRepo) Update(_ context.Context, id string, patch models.BookingPatch) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := patch.Apply(&existing); err != nil {
		return nil, fmt.Errorf("failed to merge booking %s: %w", id, err)
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	r.bookings[id] = existing
	return &existing, nil
}

func (r *MemoryBookingRepo) Delete(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.bookings, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &removed, nil
}

func (r *MemoryBookingRepo) Ping(context.Context) error { return nil }

// Len returns the number of stored bookings.
func (r *MemoryBookingRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

func (r *MemoryBookingRepo) filter(keep func(models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		if b := r.bookings[id]; keep(b) {
			out = append(out, b)
		}
	}
	return out
}
