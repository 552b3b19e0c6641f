package repository

import (
	"context"
	"sync"
	"time"

	"tably/pkg/model"
)

// BookingRepository holds every accepted booking for the lifetime of the
// process. Bookings are append-only: there is no update or delete.
type BookingRepository interface {
	// Add appends a booking. There are no uniqueness checks and no error
	// conditions; the booking is visible to all subsequent queries.
	Add(ctx context.Context, booking *model.Booking)

	// ListByDate returns the bookings whose start date falls on the given
	// calendar day, in insertion order. Empty slice when nothing matches.
	ListByDate(ctx context.Context, date time.Time) []*model.Booking

	// Overlapping returns the bookings whose [start, end) window intersects
	// the given half-open interval, in insertion order.
	Overlapping(ctx context.Context, start, end model.LocalDateTime) []*model.Booking

	// Count returns the total number of stored bookings.
	Count(ctx context.Context) int
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []*model.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{}
}

func (r *memoryBookingRepository) Add(_ context.Context, booking *model.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
}

func (r *memoryBookingRepository) ListByDate(_ context.Context, date time.Time) []*model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Booking, 0)
	for _, b := range r.bookings {
		if b.StartDateTime.OnDate(date) {
			matched = append(matched, b)
		}
	}
	return matched
}

func (r *memoryBookingRepository) Overlapping(_ context.Context, start, end model.LocalDateTime) []*model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Booking, 0)
	for _, b := range r.bookings {
		if b.Overlaps(start, end) {
			matched = append(matched, b)
		}
	}
	return matched
}

func (r *memoryBookingRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
