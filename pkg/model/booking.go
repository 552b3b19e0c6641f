package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// Booking is an accepted reservation of tableSize seats for a fixed-length
// window starting at StartDateTime. Bookings are immutable once created and
// live for the lifetime of the process.
type Booking struct {
	CustomerName  string
	TableSize     int
	StartDateTime LocalDateTime
	EndDateTime   LocalDateTime
}

// NewBooking constructs a booking whose end is always start + duration.
func NewBooking(customerName string, tableSize int, start LocalDateTime, duration time.Duration) *Booking {
	return &Booking{
		CustomerName:  customerName,
		TableSize:     tableSize,
		StartDateTime: start,
		EndDateTime:   start.AddDuration(duration),
	}
}

// Overlaps reports whether the booking's [start, end) window intersects
// [start, end) under half-open semantics: touching intervals do not overlap.
func (b *Booking) Overlaps(start, end LocalDateTime) bool {
	return b.StartDateTime.Before(end.Time) && start.Before(b.EndDateTime.Time)
}

// MarshalJSON serializes tableSize as a string, matching the wire contract
// of the bookings listing.
func (b *Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CustomerName  string        `json:"customerName"`
		TableSize     string        `json:"tableSize"`
		StartDateTime LocalDateTime `json:"startDateTime"`
		EndDateTime   LocalDateTime `json:"endDateTime"`
	}{
		CustomerName:  b.CustomerName,
		TableSize:     strconv.Itoa(b.TableSize),
		StartDateTime: b.StartDateTime,
		EndDateTime:   b.EndDateTime,
	})
}

// BookingRequest is the decoded POST /booking payload, validated before the
// domain checks run.
type BookingRequest struct {
	CustomerName string        `json:"customerName" validate:"required,min=1"`
	TableSize    int           `json:"tableSize" validate:"required,min=1"`
	DateTime     LocalDateTime `json:"dateTime" validate:"required"`
}
