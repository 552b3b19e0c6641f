package main

import (
	"tably/internal/bookings/availability"
	"tably/internal/bookings/events"
	"tably/internal/bookings/handler"
	"tably/internal/bookings/repository"
	"tably/internal/bookings/service"
	"tably/internal/bookings/validator"
	"tably/pkg/app"
	"tably/pkg/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting bookings service")

	bookingRepo := repository.NewMemoryBookingRepository()
	publisher := initPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	bookingService := initService(cfg, bookingRepo, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(bookingRepo, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, booking events disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}
	return publisher
}

func initService(cfg *config.Config, repo repository.BookingRepository, publisher events.Publisher) service.BookingService {
	calc := availability.NewCalculator(repo, cfg.BookingDuration)
	bookingValidator := validator.NewBookingValidator(cfg.OpeningMinutes(), cfg.LastBookingMinutes(), cfg.Log)

	bookingService := service.NewBookingService(repo, calc, bookingValidator, publisher, cfg)

	cfg.Log.Info("Booking service initialized",
		"capacity", cfg.RestaurantCapacity,
		"booking_duration", cfg.BookingDuration,
		"operating_window", cfg.OpeningTime+"-"+cfg.LastBookingTime,
	)
	return bookingService
}
