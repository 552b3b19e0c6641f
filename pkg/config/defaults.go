package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Restaurant rules: 10 seats total, every booking lasts 2 hours, and a
	// booking may start from 09:00 up to (but not including) 19:00.
	DefaultRestaurantCapacity = 10
	DefaultBookingDuration    = 2 * time.Hour
	DefaultOpeningTime        = "09:00"
	DefaultLastBookingTime    = "19:00"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaTopic = "bookings.created"
)
