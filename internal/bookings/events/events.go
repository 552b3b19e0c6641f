package events

import (
	"context"
	"time"

	"tably/pkg/kafka"
	"tably/pkg/logger"
	"tably/pkg/model"
)

const (
	EventBookingCreated = "booking.created"

	source = "tably.bookings"
)

// BookingCreated is published after a booking is accepted and stored.
type BookingCreated struct {
	CustomerName  string `json:"customer_name"`
	TableSize     int    `json:"table_size"`
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
	CreatedAt     string `json:"created_at"`
}

// Publisher emits booking lifecycle events for downstream consumers.
// Publishing is best effort: a broker failure never fails the booking.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) (Publisher, error) {
	producer, err := kafka.NewProducer(brokers, topic)
	if err != nil {
		return nil, err
	}
	log.Info("Booking event publisher initialized", "topic", topic)
	return &kafkaPublisher{producer: producer, log: log}, nil
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	event := BookingCreated{
		CustomerName:  booking.CustomerName,
		TableSize:     booking.TableSize,
		StartDateTime: booking.StartDateTime.String(),
		EndDateTime:   booking.EndDateTime.String(),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	msg, err := kafka.NewEventMessage(booking.CustomerName, EventBookingCreated, source, event)
	if err != nil {
		p.log.Error("Failed to encode booking event", "error", err)
		return
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			"event_type", EventBookingCreated,
			"error", err,
		)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *model.Booking) {}
func (NoopPublisher) Close() error                                  { return nil }
