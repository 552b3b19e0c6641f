package service

import (
	"context"
	"sync"
	"time"

	"tably/internal/bookings/availability"
	"tably/internal/bookings/events"
	"tably/internal/bookings/repository"
	"tably/internal/bookings/validator"
	"tably/pkg/config"
	apperrors "tably/pkg/errors"
	"tably/pkg/model"
	"tably/pkg/sanitizer"
)

type BookingService interface {
	// Create validates a booking request against the operating window and
	// restaurant capacity and, when both pass, stores the booking.
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)

	// ListByDate returns all bookings starting on the given day, in the
	// order they were accepted.
	ListByDate(ctx context.Context, date time.Time) []*model.Booking
}

type bookingService struct {
	repo      repository.BookingRepository
	calc      *availability.Calculator
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config

	// mu serializes the capacity check with the write that follows it, so
	// two concurrent requests cannot both observe the same free seats.
	mu sync.Mutex
}

func NewBookingService(
	repo repository.BookingRepository,
	calc *availability.Calculator,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		calc:      calc,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	req.CustomerName = sanitizer.SanitizeName(req.CustomerName)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	booking, err := s.reserve(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Booking created successfully",
		"customer_name", booking.CustomerName,
		"table_size", booking.TableSize,
		"start_date_time", booking.StartDateTime.String(),
		"end_date_time", booking.EndDateTime.String(),
	)

	// Best-effort publish, deliberately outside the critical section so a
	// slow broker never serializes other bookings.
	s.publisher.BookingCreated(ctx, booking)

	return booking, nil
}

// reserve performs the capacity check and the write it guards as one
// critical section.
func (s *bookingService) reserve(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tablesBooked := s.calc.TablesBooked(ctx, req.DateTime)
	if tablesBooked+req.TableSize > s.cfg.RestaurantCapacity {
		s.cfg.Log.Warn("Booking rejected: capacity exceeded",
			"customer_name", req.CustomerName,
			"table_size", req.TableSize,
			"tables_booked", tablesBooked,
			"capacity", s.cfg.RestaurantCapacity,
			"date_time", req.DateTime.String(),
		)
		return nil, apperrors.CapacityExceeded()
	}

	booking := model.NewBooking(req.CustomerName, req.TableSize, req.DateTime, s.cfg.BookingDuration)
	s.repo.Add(ctx, booking)

	return booking, nil
}

func (s *bookingService) ListByDate(ctx context.Context, date time.Time) []*model.Booking {
	return s.repo.ListByDate(ctx, date)
}
