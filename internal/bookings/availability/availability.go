// Package availability computes seats already committed during a candidate
// booking window.
package availability

import (
	"context"
	"time"

	"tably/internal/bookings/repository"
	"tably/pkg/model"
)

type Calculator struct {
	repo     repository.BookingRepository
	duration time.Duration
}

func NewCalculator(repo repository.BookingRepository, duration time.Duration) *Calculator {
	return &Calculator{
		repo:     repo,
		duration: duration,
	}
}

// TablesBooked sums the table sizes of every booking whose window overlaps
// [start, start+duration). Pure read over current repository state.
func (c *Calculator) TablesBooked(ctx context.Context, start model.LocalDateTime) int {
	total := 0
	for _, b := range c.repo.Overlapping(ctx, start, start.AddDuration(c.duration)) {
		total += b.TableSize
	}
	return total
}
