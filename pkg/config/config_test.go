package config

import (
	"testing"
	"time"

	"tably/pkg/logger"
)

func validConfig() *Config {
	return &Config{
		Port:               "8080",
		RestaurantCapacity: 10,
		BookingDuration:    2 * time.Hour,
		OpeningTime:        "09:00",
		LastBookingTime:    "19:00",
		RateLimitRequests:  60,
		RateLimitWindow:    time.Minute,
		RequestTimeout:     30 * time.Second,
		MaxRequestSize:     1 << 20,
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       15 * time.Second,
		IdleTimeout:        time.Minute,
		ShutdownTimeout:    30 * time.Second,
		KafkaTopic:         "bookings.created",
		Log:                logger.New(logger.Config{Level: "error"}),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Port = "http" }, true},
		{"zero capacity", func(c *Config) { c.RestaurantCapacity = 0 }, true},
		{"zero duration", func(c *Config) { c.BookingDuration = 0 }, true},
		{"bad opening time", func(c *Config) { c.OpeningTime = "9am" }, true},
		{"window inverted", func(c *Config) { c.OpeningTime = "19:00"; c.LastBookingTime = "09:00" }, true},
		{"brokers without topic", func(c *Config) { c.KafkaBrokers = []string{"localhost:9092"}; c.KafkaTopic = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOperatingWindowMinutes(t *testing.T) {
	cfg := validConfig()
	if got := cfg.OpeningMinutes(); got != 9*60 {
		t.Errorf("OpeningMinutes = %d, want %d", got, 9*60)
	}
	if got := cfg.LastBookingMinutes(); got != 19*60 {
		t.Errorf("LastBookingMinutes = %d, want %d", got, 19*60)
	}
}
